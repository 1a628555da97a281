// Package feed builds the RSS document for the latest published posts.
package feed

import (
	"encoding/xml"
	"strings"
	"time"

	"inkwell/app/markup"
	"inkwell/app/models"
)

// SummaryWords is how many words of rendered post body each feed item
// carries.
const SummaryWords = 30

// RSS is the root element of an RSS 2.0 document.
type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel Channel  `xml:"channel"`
}

// Channel describes the feed itself.
type Channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []Item `xml:"item"`
}

// Item is one post entry in the feed.
type Item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// Build assembles the feed document from already-filtered published
// posts, newest first. Descriptions are the markdown-rendered bodies
// truncated tag-safely to SummaryWords words.
func Build(title, baseURL, description string, posts []*models.Post) *RSS {
	base := strings.TrimRight(baseURL, "/")

	items := make([]Item, 0, len(posts))
	for _, post := range posts {
		link := base + post.CanonicalPath()
		items = append(items, Item{
			Title:       post.Title,
			Link:        link,
			Description: markup.Summary(post.Body, SummaryWords),
			PubDate:     post.Publish.Format(time.RFC1123Z),
			GUID:        link,
		})
	}

	return &RSS{
		Version: "2.0",
		Channel: Channel{
			Title:       title,
			Link:        base + "/",
			Description: description,
			Items:       items,
		},
	}
}

// Encode writes the document as XML with the standard header.
func (r *RSS) Encode() ([]byte, error) {
	body, err := xml.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
