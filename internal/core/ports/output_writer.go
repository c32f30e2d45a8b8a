package ports

// OutputWriter delivers generated license text to its destination.
type OutputWriter interface {
	Write(content string) error
	// Destination names where Write puts the text, for messages.
	Destination() string
}
