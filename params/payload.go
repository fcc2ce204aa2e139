package params

// ModelPropertyName is the key under which request payloads are nested.
const ModelPropertyName = "model"

// Payload nests caller data under the model property.
type Payload[T any] struct {
	Model T `json:"model"`
}

// Map returns the payload keyed by ModelPropertyName.
func (p Payload[T]) Map() map[string]any {
	return map[string]any{ModelPropertyName: p.Model}
}

// CreateParams wraps data for a create call.
func CreateParams[T any](data T) Payload[T] {
	return Payload[T]{Model: data}
}

// UpdateParams wraps data for an update call.
func UpdateParams[T any](data T) Payload[T] {
	return Payload[T]{Model: data}
}

// RemoveParams wraps data for a remove call.
func RemoveParams[T any](data T) Payload[T] {
	return Payload[T]{Model: data}
}
