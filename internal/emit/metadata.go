package emit

// MetaKey is a recognized document metadata key. The set is closed:
// only these keys may be stamped onto the emitted PDF, and unknown keys
// are rejected rather than silently passed through.
type MetaKey string

// The recognized metadata keys.
const (
	MetaTitle    MetaKey = "title"
	MetaAuthor   MetaKey = "author"
	MetaSubject  MetaKey = "subject"
	MetaKeywords MetaKey = "keywords"
	MetaCreator  MetaKey = "creator"
	MetaProducer MetaKey = "producer"
)

// infoDictNames maps recognized keys to their PDF information
// dictionary entry names. The keywords value is a single pre-joined
// string; any comma-joining is the caller's responsibility.
var infoDictNames = map[MetaKey]string{
	MetaTitle:    "Title",
	MetaAuthor:   "Author",
	MetaSubject:  "Subject",
	MetaKeywords: "Keywords",
	MetaCreator:  "Creator",
	MetaProducer: "Producer",
}

// mapMetadata translates user-facing metadata keys into information
// dictionary entries, rejecting any key outside the recognized set.
func mapMetadata(metadata map[string]string) (map[string]string, error) {
	if len(metadata) == 0 {
		return nil, nil
	}
	props := make(map[string]string, len(metadata))
	for key, value := range metadata {
		name, ok := infoDictNames[MetaKey(key)]
		if !ok {
			return nil, &EmitError{Kind: UnknownMetadataKey, Subject: key}
		}
		props[name] = value
	}
	return props, nil
}
