package port

// XDGPaths provides XDG Base Directory paths scoped to the application.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)
	CacheDir() (string, error)
	ManDir() (string, error)
}
