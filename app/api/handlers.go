package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/feedcomb/syndication/app/feed"
	"github.com/feedcomb/syndication/app/syndication"
	"github.com/gin-gonic/gin"
)

func NewHandler(retriever feed.DataRetriever, collection *syndication.ParserCollection) *Handler {
	return &Handler{
		retriever:  retriever,
		collection: collection,
	}
}

// GetParse fetches the URL given in the query string, parses it and
// returns the normalized feed. Parse failures carry the error code and,
// when the page links to a feed, a discovered URL hint for a follow-up
// request.
func (h *Handler) GetParse(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url parameter"})
		return
	}
	formatHint := c.Query("format")

	data, code := h.retriever.Retrieve(c.Request.Context(), url)
	if code != syndication.Success {
		slog.Error("Retrieval failed", "url", url, "code", code.String())
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Retrieval failed",
			"code":  code.String(),
		})
		return
	}

	src := syndication.NewDocumentSource(data, url)
	parsed, code := h.collection.Parse(src, formatHint)
	if code != syndication.Success {
		slog.Error("Parse failed", "url", url, "code", code.String())
		response := gin.H{
			"error": "Parse failed",
			"code":  code.String(),
		}
		if discovered := feed.DiscoverFeedURL(data, url); discovered != "" {
			response["discovered_feed_url"] = discovered
		}
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	c.JSON(http.StatusOK, renderFeed(parsed))
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"formats":   h.collection.Formats(),
	})
}

func renderFeed(f syndication.Feed) FeedResponse {
	response := FeedResponse{
		Title:       f.Title(),
		Link:        f.Link(),
		Description: f.Description(),
		Author:      f.Author(),
		Language:    f.Language(),
		Categories:  renderCategories(f.Categories()),
		Items:       []ItemResponse{},
	}

	if img := f.Image(); !img.IsNil() {
		response.Image = &ImageResponse{
			URL:         img.URL(),
			Title:       img.Title(),
			Link:        img.Link(),
			Description: img.Description(),
			Width:       img.Width(),
			Height:      img.Height(),
		}
	}

	for _, item := range f.Items() {
		response.Items = append(response.Items, renderItem(item))
	}

	return response
}

func renderItem(item syndication.Item) ItemResponse {
	rendered := ItemResponse{
		ID:            item.ID(),
		Title:         item.Title(),
		Link:          item.Link(),
		Description:   item.Description(),
		Content:       item.Content(),
		Author:        item.Author(),
		Language:      item.Language(),
		DatePublished: renderDate(item.DatePublished()),
		DateUpdated:   renderDate(item.DateUpdated()),
		Categories:    renderCategories(item.Categories()),
		CommentsLink:  item.CommentsLink(),
	}

	for _, enc := range item.Enclosures() {
		rendered.Enclosures = append(rendered.Enclosures, EnclosureResponse{
			URL:    enc.URL(),
			Title:  enc.Title(),
			Type:   enc.Type(),
			Length: enc.Length(),
		})
	}

	return rendered
}

func renderCategories(cats []syndication.Category) []CategoryResponse {
	var out []CategoryResponse
	for _, c := range cats {
		out = append(out, CategoryResponse{
			Term:   c.Term(),
			Scheme: c.Scheme(),
			Label:  c.Label(),
		})
	}
	return out
}

// renderDate formats a timestamp, mapping the zero sentinel to absent.
func renderDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
