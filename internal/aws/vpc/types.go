package vpc

type VPCInfo struct {
	VPCID     string
	Name      string
	CIDR      string
	State     string
	IsDefault bool
}

type SubnetInfo struct {
	SubnetID     string
	Name         string
	VPCID        string
	CIDR         string
	AZ           string
	AvailableIPs int
	Type         string // "Public" or "Private", resolved from route tables
}

type RouteTableInfo struct {
	RouteTableID string
	Name         string
	VPCID        string
	SubnetIDs    []string
	IsMain       bool
	Routes       []RouteEntry
}

type RouteEntry struct {
	Destination string // CIDR or prefix list ID
	Target      string // igw-xxx, nat-xxx, local, etc.
	State       string // active, blackhole
}

type InternetGatewayInfo struct {
	GatewayID   string
	Name        string
	State       string
	AttachedVPC string
}

type NATGatewayInfo struct {
	GatewayID string
	Name      string
	VPCID     string
	SubnetID  string
	State     string // available, pending, failed, deleting, deleted
	PublicIP  string
	PrivateIP string
}

type TransitGatewayInfo struct {
	GatewayID           string
	Name                string
	State               string
	AmazonSideASN       string
	DefaultRouteTableID string
}

type VPNGatewayInfo struct {
	GatewayID     string
	Name          string
	State         string
	Type          string // ipsec.1
	AmazonSideASN string
	AttachedVPC   string
}

type SecurityGroupInfo struct {
	GroupID      string
	Name         string
	VPCID        string
	InboundRules []string // summarized "proto/ports from source", first rules only
}

type NetworkACLInfo struct {
	NACLID    string
	VPCID     string
	SubnetIDs []string
	IsDefault bool
}

type PeeringInfo struct {
	PeeringID     string
	Name          string
	RequesterVPC  string
	RequesterCIDR string
	AccepterVPC   string
	AccepterCIDR  string
	Status        string
}

type EndpointInfo struct {
	EndpointID  string
	Name        string
	Type        string // Interface, Gateway, GatewayLoadBalancer
	VPCID       string
	ServiceName string
	State       string
}

type FlowLogInfo struct {
	FlowLogID   string
	ResourceID  string
	TrafficType string
	Status      string
	Destination string
}
