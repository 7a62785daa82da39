package books

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/hassankhsalar/boichai-api/internal/store/catalog"
	"github.com/hassankhsalar/boichai-api/internal/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// bookReq is the create/replace body. Quantity and rating are pointers
// so "missing" and "zero" stay distinguishable; every field is
// required, matching the catalog contract.
type bookReq struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating"`
	ImageURL    string   `json:"image_url"`
	Quantity    *int     `json:"quantity"`
}

func (r bookReq) toNewBook() (catalog.NewBook, error) {
	title, err := validate.RequireBounded("title", r.Title, 1, 200)
	if err != nil {
		return catalog.NewBook{}, err
	}
	author, err := validate.RequireBounded("author", r.Author, 1, 120)
	if err != nil {
		return catalog.NewBook{}, err
	}
	category, err := validate.RequireBounded("category", r.Category, 1, 60)
	if err != nil {
		return catalog.NewBook{}, err
	}
	description, err := validate.RequireBounded("description", r.Description, 1, 2000)
	if err != nil {
		return catalog.NewBook{}, err
	}
	image, err := validate.RequireBounded("image_url", r.ImageURL, 1, 2048)
	if err != nil {
		return catalog.NewBook{}, err
	}
	if r.Rating == nil || r.Quantity == nil {
		return catalog.NewBook{}, errAllFields
	}
	rating, err := validate.RequireRating(*r.Rating)
	if err != nil {
		return catalog.NewBook{}, err
	}
	quantity, err := validate.RequireQuantity(*r.Quantity)
	if err != nil {
		return catalog.NewBook{}, err
	}
	return catalog.NewBook{
		Title:       title,
		Author:      author,
		Category:    category,
		Description: description,
		Rating:      rating,
		ImageURL:    image,
		Quantity:    quantity,
	}, nil
}
