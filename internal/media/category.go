// Package media classifies files by extension and maps categories to
// destination directories.
package media

// Category is the bucket a file is sorted into.
type Category int

const (
	Other Category = iota
	Image
	Video
)

func (c Category) String() string {
	switch c {
	case Image:
		return "image"
	case Video:
		return "video"
	default:
		return "other"
	}
}

// MarshalText lets a Category appear as its name in JSON output.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
