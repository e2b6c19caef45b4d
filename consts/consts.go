package consts

const (
	EmptyString = ""

	// Version is the running software version reported by the admin panel.
	Version = "0.6.0"
)
