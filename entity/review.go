package entity

import "github.com/Asian-Restaurant/backend/pkg/docstore"

// Review is append-only. Name comes from the reviewer's stored user
// record, never from the request.
type Review struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

func (r *Review) Doc() docstore.Document {
	return docstore.Document{
		"comment": r.Comment,
		"name":    r.Name,
	}
}
