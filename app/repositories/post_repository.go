package repositories

import (
	"fmt"
	"sort"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create persists a new post and assigns its ID. Lifecycle defaults are
// the caller's job; see Post.BeforeCreate. The (publish date, slug) pair
// must be unique across all posts.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := checkSlugFree(txn, post); err != nil {
			return err
		}

		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, post.ID))
		return txn.Set(key, data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListAll retrieves every post, newest publish date first.
func (r *BadgerPostRepository) ListAll() ([]*models.Post, error) {
	return r.list(func(*models.Post) bool { return true })
}

// ListPublished retrieves published posts, newest publish date first.
func (r *BadgerPostRepository) ListPublished() ([]*models.Post, error) {
	return r.list(func(p *models.Post) bool { return p.IsPublished() })
}

// ListByAuthor retrieves all posts written by the given author.
func (r *BadgerPostRepository) ListByAuthor(authorID int) ([]*models.Post, error) {
	return r.list(func(p *models.Post) bool { return p.AuthorID == authorID })
}

func (r *BadgerPostRepository) list(keep func(*models.Post) bool) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			if keep(&post) {
				posts = append(posts, &post)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Publish-descending ordering, ID as the stable tiebreak.
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Publish.Equal(posts[j].Publish) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].Publish.After(posts[j].Publish)
	})
	return posts, nil
}

// Update updates an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	post.BeforeUpdate()

	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, post.ID))

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := checkSlugFree(txn, post); err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, id))

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// checkSlugFree scans for another post holding the same slug on the same
// publish date.
func checkSlugFree(txn *badger.Txn, post *models.Post) error {
	opts := badger.DefaultIteratorOptions
	it := txn.NewIterator(opts)
	defer it.Close()

	prefix := []byte(PostKeyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var existing models.Post
		err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		})
		if err != nil {
			return err
		}
		if existing.ID == post.ID || existing.Slug != post.Slug {
			continue
		}
		ey, em, ed := existing.Publish.Date()
		py, pm, pd := post.Publish.Date()
		if ey == py && em == pm && ed == pd {
			return ErrDuplicateSlug
		}
	}
	return nil
}
