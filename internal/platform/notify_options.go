// Package platform delivers desktop notifications through the host's
// native notification service.
package platform

// Options configures how a notification is displayed.
type Options struct {
	// AppName identifies the sender; empty means "Paintboard".
	AppName string
	// IconPath optionally names an image shown with the notification.
	IconPath string
	// TimeoutMillis is how long the notification stays up; zero uses five
	// seconds.
	TimeoutMillis int32
}

func (o Options) appName() string {
	if o.AppName == "" {
		return "Paintboard"
	}
	return o.AppName
}

func (o Options) timeout() int32 {
	if o.TimeoutMillis <= 0 {
		return 5000
	}
	return o.TimeoutMillis
}
