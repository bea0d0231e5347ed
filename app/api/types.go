package api

import (
	"github.com/feedcomb/syndication/app/feed"
	"github.com/feedcomb/syndication/app/syndication"
)

type Handler struct {
	retriever  feed.DataRetriever
	collection *syndication.ParserCollection
}

// FeedResponse is the JSON rendition of a parsed feed.
type FeedResponse struct {
	Title       string             `json:"title"`
	Link        string             `json:"link"`
	Description string             `json:"description"`
	Author      string             `json:"author,omitempty"`
	Language    string             `json:"language,omitempty"`
	Image       *ImageResponse     `json:"image,omitempty"`
	Categories  []CategoryResponse `json:"categories,omitempty"`
	Items       []ItemResponse     `json:"items"`
}

type ItemResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Link          string              `json:"link"`
	Description   string              `json:"description"`
	Content       string              `json:"content,omitempty"`
	Author        string              `json:"author,omitempty"`
	Language      string              `json:"language,omitempty"`
	DatePublished string              `json:"date_published,omitempty"`
	DateUpdated   string              `json:"date_updated,omitempty"`
	Categories    []CategoryResponse  `json:"categories,omitempty"`
	Enclosures    []EnclosureResponse `json:"enclosures,omitempty"`
	CommentsLink  string              `json:"comments_link,omitempty"`
}

type CategoryResponse struct {
	Term   string `json:"term"`
	Scheme string `json:"scheme,omitempty"`
	Label  string `json:"label,omitempty"`
}

type EnclosureResponse struct {
	URL    string `json:"url"`
	Title  string `json:"title,omitempty"`
	Type   string `json:"type,omitempty"`
	Length int    `json:"length,omitempty"`
}

type ImageResponse struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}
