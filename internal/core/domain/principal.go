package domain

const (
	RoleAdmin  = "admin"
	RoleDevice = "device"
)

// Principal is the authenticated caller extracted from a bearer token.
// Device principals may only report positions for their own DeviceID.
type Principal struct {
	Subject  string
	Role     string
	DeviceID string
}

// CanReportFor reports whether the principal may submit positions for deviceID.
func (p Principal) CanReportFor(deviceID string) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleDevice:
		return p.DeviceID != "" && p.DeviceID == deviceID
	}
	return false
}
