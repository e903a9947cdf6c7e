package collector

import (
	"fmt"

	"netdoc.dev/aws-netdoc/internal/aws/dx"
	"netdoc.dev/aws-netdoc/internal/aws/ec2"
	"netdoc.dev/aws-netdoc/internal/aws/elb"
	"netdoc.dev/aws-netdoc/internal/aws/vpc"
)

// Section identifies one resource-type section of a snapshot.
type Section string

const (
	SectionVPCs             Section = "VPCs"
	SectionSubnets          Section = "Subnets"
	SectionRouteTables      Section = "Route Tables"
	SectionInternetGateways Section = "Internet Gateways"
	SectionNATGateways      Section = "NAT Gateways"
	SectionTransitGateways  Section = "Transit Gateways"
	SectionVPNGateways      Section = "VPN Gateways"
	SectionInstances        Section = "EC2 Instances"
	SectionSecurityGroups   Section = "Security Groups"
	SectionNetworkACLs      Section = "Network ACLs"
	SectionPeerings         Section = "VPC Peering Connections"
	SectionEndpoints        Section = "VPC Endpoints"
	SectionFlowLogs         Section = "Flow Logs"
	SectionLoadBalancers    Section = "Load Balancers"
	SectionDirectConnect    Section = "Direct Connect Configuration"
)

// Metadata describes the account, region and date a snapshot was taken for.
type Metadata struct {
	Region    string
	AccountID string
	Date      string
}

// Snapshot is an immutable capture of the networking resources in one
// region. It is fetched once, formatted, and discarded.
type Snapshot struct {
	Metadata Metadata

	VPCs             []vpc.VPCInfo
	Subnets          []vpc.SubnetInfo
	RouteTables      []vpc.RouteTableInfo
	InternetGateways []vpc.InternetGatewayInfo
	NATGateways      []vpc.NATGatewayInfo
	TransitGateways  []vpc.TransitGatewayInfo
	VPNGateways      []vpc.VPNGatewayInfo
	Instances        []ec2.InstanceInfo
	InstanceSummary  ec2.InstanceSummary
	SecurityGroups   []vpc.SecurityGroupInfo
	NetworkACLs      []vpc.NetworkACLInfo
	Peerings         []vpc.PeeringInfo
	Endpoints        []vpc.EndpointInfo
	FlowLogs         []vpc.FlowLogInfo
	LoadBalancers    []elb.LoadBalancerInfo

	DXConnections       []dx.ConnectionInfo
	DXVirtualInterfaces []dx.VirtualInterfaceInfo
	DXGateways          []dx.GatewayInfo

	// Unavailable records sections skipped because the credentials lacked
	// the describe permission for that resource type.
	Unavailable map[Section]bool
}

// SectionUnavailable reports whether a section was skipped for missing
// permissions.
func (s *Snapshot) SectionUnavailable(section Section) bool {
	return s.Unavailable[section]
}

// HasDirectConnect reports whether any Direct Connect resource was found.
func (s *Snapshot) HasDirectConnect() bool {
	return len(s.DXConnections) > 0 || len(s.DXVirtualInterfaces) > 0 || len(s.DXGateways) > 0
}

// MissingVPCRefs returns a description of every resource whose VPC id does
// not resolve to a VPC in the same snapshot. Attachment placeholders such
// as "Not attached" and "EC2-Classic" are not foreign keys and are ignored.
func (s *Snapshot) MissingVPCRefs() []string {
	known := make(map[string]bool, len(s.VPCs))
	for _, v := range s.VPCs {
		known[v.VPCID] = true
	}

	isRef := func(id string) bool {
		return id != "" && id != "N/A" && id != "Not attached" && id != "EC2-Classic"
	}

	var missing []string
	check := func(kind, id, vpcID string) {
		if isRef(vpcID) && !known[vpcID] {
			missing = append(missing, fmt.Sprintf("%s %s references unknown VPC %s", kind, id, vpcID))
		}
	}

	for _, sn := range s.Subnets {
		check("subnet", sn.SubnetID, sn.VPCID)
	}
	for _, rt := range s.RouteTables {
		check("route table", rt.RouteTableID, rt.VPCID)
	}
	for _, igw := range s.InternetGateways {
		check("internet gateway", igw.GatewayID, igw.AttachedVPC)
	}
	for _, nat := range s.NATGateways {
		check("NAT gateway", nat.GatewayID, nat.VPCID)
	}
	for _, sg := range s.SecurityGroups {
		check("security group", sg.GroupID, sg.VPCID)
	}
	for _, nacl := range s.NetworkACLs {
		check("network ACL", nacl.NACLID, nacl.VPCID)
	}
	for _, ep := range s.Endpoints {
		check("VPC endpoint", ep.EndpointID, ep.VPCID)
	}
	for _, inst := range s.Instances {
		check("instance", inst.InstanceID, inst.VPCID)
	}
	return missing
}
