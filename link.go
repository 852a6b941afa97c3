package chatlayout

// LinkKind identifies what activating a link does.
type LinkKind int

const (
	LinkNone LinkKind = iota
	LinkURL
	LinkUserInfo
	LinkUserAction
	LinkInsertText
)

// String returns the link kind name.
func (k LinkKind) String() string {
	switch k {
	case LinkNone:
		return "none"
	case LinkURL:
		return "url"
	case LinkUserInfo:
		return "user_info"
	case LinkUserAction:
		return "user_action"
	case LinkInsertText:
		return "insert_text"
	default:
		return "unknown"
	}
}

// Link is an action payload attached to an element. The zero value is no
// link.
type Link struct {
	Kind  LinkKind
	Value string
}

// IsZero reports whether l carries no action.
func (l Link) IsZero() bool { return l.Kind == LinkNone }
