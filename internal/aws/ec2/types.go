package ec2

// InstanceInfo represents a single EC2 instance with its network placement.
type InstanceInfo struct {
	InstanceID     string
	Name           string
	Type           string
	State          string
	VPCID          string
	SubnetID       string
	PrivateIP      string
	PublicIP       string
	PrimaryENIID   string
	SecurityGroups []string
	// IsNATInstance is set when the source/destination check is disabled,
	// which is how NAT instances are configured.
	IsNATInstance bool
}

// InstanceSummary holds aggregate instance counts.
type InstanceSummary struct {
	Total   int
	Running int
	Stopped int
	NAT     int
}
