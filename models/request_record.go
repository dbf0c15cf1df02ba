package models

// RequestRecord describes a single monitored visitor request. Records are
// created once at request time and never mutated.
type RequestRecord struct {
	Timestamp  string     `json:"timestamp"`
	IPAddress  string     `json:"ip_address"`
	GeoData    GeoData    `json:"geo_data"`
	DeviceInfo DeviceInfo `json:"device_info"`
	Route      string     `json:"route"`
	Method     string     `json:"method"`
	Referrer   string     `json:"referrer"`
}

// GeoData is the coarse location of a client address
type GeoData struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	Region      string `json:"region"`
	ISP         string `json:"isp"`
	Timezone    string `json:"timezone"`
}

// DeviceInfo is the parsed form of a User-Agent header
type DeviceInfo struct {
	Browser      string `json:"browser"`
	OS           string `json:"os"`
	Device       string `json:"device"`
	IsMobile     bool   `json:"is_mobile"`
	IsTablet     bool   `json:"is_tablet"`
	IsPC         bool   `json:"is_pc"`
	IsBot        bool   `json:"is_bot"`
	RawUserAgent string `json:"raw_user_agent"`
}

const (
	DirectReferrer = "Direct"
	unknownValue   = "Unknown"
)

// LocalGeoData is the sentinel used for private and loopback addresses
func LocalGeoData() GeoData {
	return GeoData{
		Country:     "Local Network",
		CountryCode: "LN",
		City:        "Local",
		Region:      "Local",
		ISP:         "N/A",
		Timezone:    "N/A",
	}
}

// UnknownGeoData is the sentinel used when a lookup fails
func UnknownGeoData() GeoData {
	return GeoData{
		Country:     unknownValue,
		CountryCode: unknownValue,
		City:        unknownValue,
		Region:      unknownValue,
		ISP:         unknownValue,
		Timezone:    unknownValue,
	}
}

// IsUnknown reports whether g is the failed-lookup sentinel
func (g GeoData) IsUnknown() bool {
	return g == UnknownGeoData()
}

// IsLocal reports whether g is the local network sentinel
func (g GeoData) IsLocal() bool {
	return g == LocalGeoData()
}

// Storage types reported by StorageStatus
const (
	StorageTypeUpstash = "upstash"
	StorageTypeRedis   = "redis"
	StorageTypeMemory  = "memory"
)

// StorageStatus describes the health of the request store
type StorageStatus struct {
	RemoteConnected bool   `json:"redis_connected"`
	MemoryEntries   int    `json:"memory_entries"`
	StorageType     string `json:"storage_type"`
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
}

// StorageStatusError builds the descriptor returned when the status check itself fails
func StorageStatusError(err error) StorageStatus {
	return StorageStatus{Status: "error", Message: err.Error()}
}
