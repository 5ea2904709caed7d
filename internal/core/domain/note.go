package domain

import "encoding/json"

// Note is a schemaless document owned by exactly one account. Clients send
// whatever fields they like (title, content, ...); the service only ever
// interprets the id and the owner.
type Note struct {
	ID     string
	Owner  string
	Fields map[string]any
}

// MarshalJSON flattens the free-form fields alongside the reserved "_id" and
// "user" keys, matching the shape stored documents have in the collection.
func (n Note) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(n.Fields)+2)
	for k, v := range n.Fields {
		out[k] = v
	}
	out["_id"] = n.ID
	out["user"] = n.Owner
	return json.Marshal(out)
}
