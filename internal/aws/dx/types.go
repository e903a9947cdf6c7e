package dx

type ConnectionInfo struct {
	ConnectionID string
	Name         string
	State        string
	Location     string
	Bandwidth    string
	AWSDevice    string
}

type VirtualInterfaceInfo struct {
	VIFID       string
	Name        string
	Type        string // private, public, transit
	VLAN        int
	State       string
	BGPStatus   string
	CustomerASN int
}

type GatewayInfo struct {
	GatewayID     string
	Name          string
	State         string
	AmazonSideASN string
}
