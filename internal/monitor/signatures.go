package monitor

import "strings"

// defaultMeetingSignatures are the lowercase substrings used to heuristically
// identify a running process as a known video-conferencing application.
var defaultMeetingSignatures = []string{
	"zoom",
	"teams",
	"wemeetapp", // Tencent Meeting
	"dingtalk",
	"feishu",
	"webex",
	"slack",
}

// DefaultMeetingSignatures returns a copy of the built-in meeting-app
// signature set.
func DefaultMeetingSignatures() []string {
	out := make([]string, len(defaultMeetingSignatures))
	copy(out, defaultMeetingSignatures)
	return out
}

// normalizeSignatures lowercases and trims the given signatures, dropping
// empty entries. Matching is case-insensitive, so normalizing once at
// construction keeps the per-process scan to a single ToLower call.
func normalizeSignatures(signatures []string) []string {
	out := make([]string, 0, len(signatures))
	for _, sig := range signatures {
		sig = strings.ToLower(strings.TrimSpace(sig))
		if sig != "" {
			out = append(out, sig)
		}
	}
	return out
}

// matchesAnySignature reports whether the process name contains any of the
// (already lowercased) signatures. First match wins; the heuristic accepts
// false positives such as "zoomcast_helper" by design.
func matchesAnySignature(processName string, signatures []string) bool {
	name := strings.ToLower(processName)
	for _, sig := range signatures {
		if strings.Contains(name, sig) {
			return true
		}
	}
	return false
}
