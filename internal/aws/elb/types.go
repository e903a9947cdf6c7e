package elb

type LoadBalancerInfo struct {
	Name    string
	Type    string // "application" / "network" / "gateway"
	Scheme  string // "internet-facing" / "internal"
	State   string
	VPCID   string
	DNSName string
}
