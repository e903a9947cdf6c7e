package collector

import (
	"strings"

	"netdoc.dev/aws-netdoc/internal/aws/vpc"
)

func hasInternetRoute(rt *vpc.RouteTableInfo) bool {
	for _, r := range rt.Routes {
		if strings.HasPrefix(r.Target, "igw-") && r.State != "blackhole" {
			return true
		}
	}
	return false
}

// classifySubnets resolves each subnet's route table (explicit association,
// falling back to the VPC's main table) and marks the subnet Public when
// that table routes to an internet gateway.
func classifySubnets(snap *Snapshot) {
	bySubnet := make(map[string]*vpc.RouteTableInfo)
	mainByVPC := make(map[string]*vpc.RouteTableInfo)
	for i := range snap.RouteTables {
		rt := &snap.RouteTables[i]
		for _, subnetID := range rt.SubnetIDs {
			bySubnet[subnetID] = rt
		}
		if rt.IsMain {
			mainByVPC[rt.VPCID] = rt
		}
	}

	for i := range snap.Subnets {
		subnet := &snap.Subnets[i]
		rt, ok := bySubnet[subnet.SubnetID]
		if !ok {
			rt = mainByVPC[subnet.VPCID]
		}
		subnet.Type = "Private"
		if rt != nil && hasInternetRoute(rt) {
			subnet.Type = "Public"
		}
	}
}
