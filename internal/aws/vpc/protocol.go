package vpc

// NormalizeProtocol converts AWS numeric protocol strings to human-readable names.
func NormalizeProtocol(protocol string) string {
	switch protocol {
	case "-1":
		return "All"
	case "1":
		return "ICMP"
	case "6":
		return "TCP"
	case "17":
		return "UDP"
	case "58":
		return "ICMPv6"
	default:
		return protocol
	}
}
