// Package images is the post-upload processing pipeline. Uploads are served
// as-is immediately; a background worker re-encodes them to bounded sizes
// and writes the derived files next to the original.
package images

// JobKind tells the worker which size profile to apply.
type JobKind string

const (
	KindProductImage JobKind = "product_image"
	KindAvatar       JobKind = "avatar"
)

// Job is one queued processing request, published to Redis as JSON.
type Job struct {
	Kind JobKind `json:"kind"`
	// Path is the storage path of the original upload.
	Path string `json:"path"`
}
