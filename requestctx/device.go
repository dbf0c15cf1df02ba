package requestctx

import (
	"strings"

	"github.com/mssola/useragent"

	"github.com/blogem/tracker/models"
)

const otherFamily = "Other"

var desktopOSMarkers = []string{"windows", "mac os x", "macintosh", "linux", "cros", "chrome os", "bsd"}

// ParseDevice turns a User-Agent header into structured device facts. An
// empty header yields empty strings and false flags.
func ParseDevice(userAgent string) models.DeviceInfo {
	info := models.DeviceInfo{RawUserAgent: userAgent}
	if strings.TrimSpace(userAgent) == "" {
		return info
	}

	ua := useragent.New(userAgent)
	lower := strings.ToLower(userAgent)

	name, version := ua.Browser()
	info.Browser = joinFamily(name, version)

	osInfo := ua.OSInfo()
	info.OS = joinFamily(osInfo.Name, osInfo.Version)

	info.IsBot = ua.Bot()
	info.IsTablet = !info.IsBot && isTablet(lower)
	info.IsMobile = !info.IsBot && ua.Mobile() && !info.IsTablet
	info.IsPC = !info.IsBot && !info.IsMobile && !info.IsTablet && isDesktopOS(strings.ToLower(osInfo.FullName+" "+ua.Platform()))
	info.Device = deviceFamily(ua, info)

	return info
}

func isTablet(lowerUA string) bool {
	if strings.Contains(lowerUA, "ipad") || strings.Contains(lowerUA, "tablet") || strings.Contains(lowerUA, "kindle") {
		return true
	}
	// Android tablets omit the "Mobile" token
	return strings.Contains(lowerUA, "android") && !strings.Contains(lowerUA, "mobile")
}

func isDesktopOS(lowerOS string) bool {
	if strings.Contains(lowerOS, "android") {
		return false
	}
	for _, marker := range desktopOSMarkers {
		if strings.Contains(lowerOS, marker) {
			return true
		}
	}
	return false
}

func deviceFamily(ua *useragent.UserAgent, info models.DeviceInfo) string {
	if info.IsBot {
		return "Spider"
	}
	if model := strings.TrimSpace(ua.Model()); model != "" {
		return model
	}
	switch platform := ua.Platform(); platform {
	case "iPhone", "iPad", "iPod", "iPod touch":
		return platform
	}
	switch {
	case info.IsTablet:
		return "Generic Tablet"
	case info.IsMobile:
		return "Generic Smartphone"
	}
	return otherFamily
}

func joinFamily(name, version string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = otherFamily
	}
	return strings.TrimSpace(name + " " + strings.TrimSpace(version))
}
