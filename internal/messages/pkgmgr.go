package messages

// Package manager adapter messages.
const (
	PkgmgrUnknownDistroFmt = "unknown distro_id %q (known: %s)"
	PkgmgrNoAdapterSource  = "settings select neither a built-in adapter nor custom commands"
)
