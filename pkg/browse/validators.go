package browse

// BrowseQuery contains query parameters for the browse endpoint. Directory is
// a path reference and Token is the opaque cursor from a previous page.
type BrowseQuery struct {
	Directory string `query:"directory" json:"directory" mod:"trim" validate:"required,pathref"`
	Token     string `query:"token" json:"token,omitempty" mod:"trim"`
}
