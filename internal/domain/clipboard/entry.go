// Package clipboard models recorded copy events and decides which clipboard
// contents are eligible for storage.
package clipboard

// Entry is a persisted copy event. Entries are never mutated after creation.
type Entry struct {
	id        uint
	content   string
	timestamp int64
	appName   *string
}

// NewEntry creates an entry observed at timestamp (epoch seconds). appName is
// the foreground application at capture time, nil when unknown.
func NewEntry(content string, timestamp int64, appName *string) (*Entry, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	return &Entry{
		content:   content,
		timestamp: timestamp,
		appName:   cloneString(appName),
	}, nil
}

// ReconstructEntry rebuilds an entry from persistence without validation
func ReconstructEntry(id uint, content string, timestamp int64, appName *string) *Entry {
	return &Entry{
		id:        id,
		content:   content,
		timestamp: timestamp,
		appName:   cloneString(appName),
	}
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) SetID(id uint) {
	e.id = id
}

func (e *Entry) Content() string {
	return e.content
}

func (e *Entry) Timestamp() int64 {
	return e.timestamp
}

func (e *Entry) AppName() *string {
	return cloneString(e.appName)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
