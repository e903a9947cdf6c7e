package report

import (
	"fmt"
	"strconv"
	"strings"

	"netdoc.dev/aws-netdoc/internal/aws/dx"
	"netdoc.dev/aws-netdoc/internal/aws/ec2"
	"netdoc.dev/aws-netdoc/internal/aws/elb"
	"netdoc.dev/aws-netdoc/internal/aws/vpc"
	"netdoc.dev/aws-netdoc/internal/utils"
)

const (
	// maxSecurityGroups caps the security group table; accounts routinely
	// carry hundreds of groups and the report is meant for human review.
	maxSecurityGroups = 20
	// maxInlineItems caps subnet/route lists inlined into a single cell.
	maxInlineItems = 3
)

func formatVPCs(vpcs []vpc.VPCInfo) string {
	headers := []string{"VPC ID", "Name", "CIDR Block", "State", "Default"}
	var rows [][]string
	for _, v := range vpcs {
		rows = append(rows, []string{
			v.VPCID, utils.OrUnnamed(v.Name), v.CIDR, v.State, utils.YesNo(v.IsDefault),
		})
	}
	return Table(headers, rows)
}

func formatSubnets(subnets []vpc.SubnetInfo) string {
	headers := []string{"Subnet ID", "Name", "VPC", "CIDR Block", "AZ", "Available IPs", "Type"}
	var rows [][]string
	for _, s := range subnets {
		rows = append(rows, []string{
			s.SubnetID, utils.OrUnnamed(s.Name), s.VPCID, s.CIDR, s.AZ,
			strconv.Itoa(s.AvailableIPs), s.Type,
		})
	}
	return Table(headers, rows)
}

// keyRoutes renders the non-local routes of a table. Blackholed routes are
// called out; a table with only the implicit local route reads "Local only".
func keyRoutes(rt vpc.RouteTableInfo) string {
	var routes []string
	for _, r := range rt.Routes {
		switch {
		case r.State == "blackhole":
			routes = append(routes, fmt.Sprintf("%s → %s (blackhole)", r.Destination, r.Target))
		case r.Target != "local":
			routes = append(routes, fmt.Sprintf("%s → %s", r.Destination, r.Target))
		}
	}
	if len(routes) == 0 {
		return "Local only"
	}
	return joinLimited(routes, "; ", maxInlineItems)
}

func formatRouteTables(tables []vpc.RouteTableInfo) string {
	headers := []string{"Route Table ID", "Name", "VPC", "Associated Subnets", "Key Routes"}
	var rows [][]string
	for _, rt := range tables {
		name := utils.OrUnnamed(rt.Name)
		if rt.IsMain {
			name += " (Main)"
		}

		subnets := joinLimited(rt.SubnetIDs, ", ", maxInlineItems)
		if rt.IsMain && len(rt.SubnetIDs) == 0 {
			subnets = "Main route table"
		}

		rows = append(rows, []string{rt.RouteTableID, name, rt.VPCID, subnets, keyRoutes(rt)})
	}
	return Table(headers, rows)
}

func formatInternetGateways(igws []vpc.InternetGatewayInfo) string {
	headers := []string{"IGW ID", "Name", "State", "Attached VPC"}
	var rows [][]string
	for _, igw := range igws {
		rows = append(rows, []string{igw.GatewayID, utils.OrUnnamed(igw.Name), igw.State, igw.AttachedVPC})
	}
	return Table(headers, rows)
}

func formatNATGateways(nats []vpc.NATGatewayInfo) string {
	headers := []string{"NAT Gateway ID", "Name", "VPC", "Subnet", "State", "Public IP", "Private IP"}
	var rows [][]string
	for _, nat := range nats {
		rows = append(rows, []string{
			nat.GatewayID, utils.OrUnnamed(nat.Name), nat.VPCID, nat.SubnetID,
			nat.State, nat.PublicIP, nat.PrivateIP,
		})
	}
	return Table(headers, rows)
}

func formatTransitGateways(tgws []vpc.TransitGatewayInfo) string {
	headers := []string{"TGW ID", "Name", "State", "ASN", "Default Route Table"}
	var rows [][]string
	for _, tgw := range tgws {
		rows = append(rows, []string{
			tgw.GatewayID, utils.OrUnnamed(tgw.Name), tgw.State, tgw.AmazonSideASN, tgw.DefaultRouteTableID,
		})
	}
	return Table(headers, rows)
}

func formatVPNGateways(vgws []vpc.VPNGatewayInfo) string {
	headers := []string{"VGW ID", "Name", "State", "Type", "ASN", "Attached VPC"}
	var rows [][]string
	for _, vgw := range vgws {
		rows = append(rows, []string{
			vgw.GatewayID, utils.OrUnnamed(vgw.Name), vgw.State, vgw.Type, vgw.AmazonSideASN, vgw.AttachedVPC,
		})
	}
	return Table(headers, rows)
}

func formatInstances(instances []ec2.InstanceInfo) string {
	headers := []string{"Instance ID", "Name", "Type", "State", "VPC", "Subnet", "Private IP", "Public IP", "NAT Instance"}
	var rows [][]string
	natCount := 0
	for _, inst := range instances {
		if inst.State == "terminated" || inst.State == "shutting-down" {
			continue
		}
		if inst.IsNATInstance {
			natCount++
		}
		rows = append(rows, []string{
			inst.InstanceID, utils.OrUnnamed(inst.Name), inst.Type, inst.State,
			inst.VPCID, inst.SubnetID, inst.PrivateIP, inst.PublicIP,
			utils.YesNo(inst.IsNATInstance),
		})
	}

	if len(rows) == 0 {
		return "_No EC2 instances found (excluding terminated instances)_\n"
	}

	out := Table(headers, rows)
	if natCount > 0 {
		out += fmt.Sprintf("\nNote: %d NAT instance%s detected (source/destination check disabled).\n",
			natCount, utils.Plural(natCount))
	}
	return out
}

func formatSecurityGroups(sgs []vpc.SecurityGroupInfo) string {
	headers := []string{"SG ID", "Name", "VPC", "Key Inbound Rules"}
	var rows [][]string
	for _, sg := range sgs {
		if len(rows) == maxSecurityGroups {
			break
		}
		inbound := "None"
		if len(sg.InboundRules) > 0 {
			inbound = joinLimited(sg.InboundRules, "; ", maxInlineItems)
		}
		rows = append(rows, []string{sg.GroupID, sg.Name, sg.VPCID, inbound})
	}

	out := Table(headers, rows)
	if len(sgs) > maxSecurityGroups {
		out += fmt.Sprintf("\nNote: There are %d total security groups. The table above shows the first %d.\n",
			len(sgs), maxSecurityGroups)
	}
	return out
}

func formatNetworkACLs(nacls []vpc.NetworkACLInfo) string {
	headers := []string{"NACL ID", "VPC", "Subnets", "Type", "Rules"}
	var rows [][]string
	for _, nacl := range nacls {
		naclType, rules := "Custom", "Custom rules"
		if nacl.IsDefault {
			naclType, rules = "Default", "Allow all inbound/outbound"
		}
		n := len(nacl.SubnetIDs)
		rows = append(rows, []string{
			nacl.NACLID, nacl.VPCID, fmt.Sprintf("%d subnet%s", n, utils.Plural(n)), naclType, rules,
		})
	}

	out := Table(headers, rows)
	if len(rows) > 0 {
		out += "\nNote: All NACLs follow standard rule format (Rule 100: Allow all, Rule 32767: Deny all as default).\n"
	}
	return out
}

func formatPeerings(peerings []vpc.PeeringInfo) string {
	headers := []string{"Peering Connection ID", "Name", "Requester VPC", "Accepter VPC", "Status"}
	var rows [][]string
	for _, p := range peerings {
		rows = append(rows, []string{
			p.PeeringID, utils.OrUnnamed(p.Name),
			fmt.Sprintf("%s (%s)", p.RequesterVPC, p.RequesterCIDR),
			fmt.Sprintf("%s (%s)", p.AccepterVPC, p.AccepterCIDR),
			p.Status,
		})
	}
	return Table(headers, rows)
}

func formatEndpoints(endpoints []vpc.EndpointInfo) string {
	headers := []string{"Endpoint ID", "Name", "Type", "VPC", "Service", "State"}
	var rows [][]string
	for _, ep := range endpoints {
		service := strings.TrimPrefix(ep.ServiceName, "com.amazonaws.")
		rows = append(rows, []string{
			ep.EndpointID, utils.OrUnnamed(ep.Name), ep.Type, ep.VPCID, service, ep.State,
		})
	}
	return Table(headers, rows)
}

func formatFlowLogs(flowLogs []vpc.FlowLogInfo) string {
	headers := []string{"Flow Log ID", "Resource", "Traffic Type", "Status", "Destination"}
	var rows [][]string
	for _, fl := range flowLogs {
		rows = append(rows, []string{fl.FlowLogID, fl.ResourceID, fl.TrafficType, fl.Status, fl.Destination})
	}
	return Table(headers, rows)
}

func formatLoadBalancers(lbs []elb.LoadBalancerInfo) string {
	headers := []string{"Name", "Type", "Scheme", "State", "VPC", "DNS Name"}
	var rows [][]string
	for _, lb := range lbs {
		rows = append(rows, []string{lb.Name, lb.Type, lb.Scheme, lb.State, lb.VPCID, lb.DNSName})
	}
	return Table(headers, rows)
}

func formatDirectConnect(conns []dx.ConnectionInfo, vifs []dx.VirtualInterfaceInfo, gws []dx.GatewayInfo) string {
	var parts []string

	if len(conns) > 0 {
		headers := []string{"Connection ID", "Name", "State", "Location", "Bandwidth", "AWS Device"}
		var rows [][]string
		for _, conn := range conns {
			rows = append(rows, []string{
				conn.ConnectionID, utils.OrUnnamed(conn.Name), conn.State,
				conn.Location, conn.Bandwidth, conn.AWSDevice,
			})
		}
		parts = append(parts, "### Direct Connect Connections\n\n"+Table(headers, rows))
	}

	if len(vifs) > 0 {
		headers := []string{"VIF ID", "Name", "Type", "VLAN", "State", "BGP Status", "Customer ASN"}
		var rows [][]string
		for _, vif := range vifs {
			rows = append(rows, []string{
				vif.VIFID, utils.OrUnnamed(vif.Name), vif.Type, strconv.Itoa(vif.VLAN),
				vif.State, vif.BGPStatus, strconv.Itoa(vif.CustomerASN),
			})
		}
		parts = append(parts, "### Virtual Interfaces (VIFs)\n\n"+Table(headers, rows))
	}

	if len(gws) > 0 {
		headers := []string{"DX Gateway ID", "Name", "State", "ASN"}
		var rows [][]string
		for _, gw := range gws {
			rows = append(rows, []string{gw.GatewayID, utils.OrUnnamed(gw.Name), gw.State, gw.AmazonSideASN})
		}
		parts = append(parts, "### Direct Connect Gateways\n\n"+Table(headers, rows))
	}

	if len(parts) == 0 {
		return "_No Direct Connect resources found_\n"
	}
	return strings.Join(parts, "\n")
}
