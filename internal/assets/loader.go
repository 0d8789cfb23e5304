package assets

// StyleLoader defines the contract for loading CSS styles.
// Implementations may load from embedded assets, filesystem, S3, etc.
type StyleLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}
