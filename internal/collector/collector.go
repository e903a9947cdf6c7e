package collector

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	awsclient "netdoc.dev/aws-netdoc/internal/aws"
	"netdoc.dev/aws-netdoc/internal/utils"
)

// Collector issues the sequence of describe calls that builds a Snapshot.
// Calls are sequential; each resource type is independent of the others.
type Collector struct {
	clients *awsclient.ServiceClient
	log     *logrus.Logger
}

func New(clients *awsclient.ServiceClient, log *logrus.Logger) *Collector {
	return &Collector{clients: clients, log: log}
}

// skip decides whether a failed section can be omitted from the report.
// Authorization failures mark the section unavailable and let the run
// continue; anything else is fatal.
func (c *Collector) skip(snap *Snapshot, section Section, err error) bool {
	if !isAccessDenied(err) {
		return false
	}
	c.log.WithField("section", string(section)).Warnf("missing permission, section skipped: %v", err)
	snap.Unavailable[section] = true
	return true
}

// Collect fetches every resource type and returns an assembled snapshot.
// Each section is sorted by resource id so repeated runs against an
// unchanged account produce identical output.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		Metadata: Metadata{
			Region:    c.clients.Region,
			AccountID: c.clients.AccountID,
			Date:      time.Now().Format(utils.DateOnly),
		},
		Unavailable: make(map[Section]bool),
	}

	var err error

	c.log.Info("collecting VPCs")
	if snap.VPCs, err = c.clients.VPC.ListVPCs(ctx); err != nil && !c.skip(snap, SectionVPCs, err) {
		return nil, err
	}

	c.log.Info("collecting subnets")
	if snap.Subnets, err = c.clients.VPC.ListSubnets(ctx); err != nil && !c.skip(snap, SectionSubnets, err) {
		return nil, err
	}

	c.log.Info("collecting route tables")
	if snap.RouteTables, err = c.clients.VPC.ListRouteTables(ctx); err != nil && !c.skip(snap, SectionRouteTables, err) {
		return nil, err
	}

	c.log.Info("collecting internet gateways")
	if snap.InternetGateways, err = c.clients.VPC.ListInternetGateways(ctx); err != nil && !c.skip(snap, SectionInternetGateways, err) {
		return nil, err
	}

	c.log.Info("collecting NAT gateways")
	if snap.NATGateways, err = c.clients.VPC.ListNATGateways(ctx); err != nil && !c.skip(snap, SectionNATGateways, err) {
		return nil, err
	}

	c.log.Info("collecting transit gateways")
	if snap.TransitGateways, err = c.clients.VPC.ListTransitGateways(ctx); err != nil && !c.skip(snap, SectionTransitGateways, err) {
		return nil, err
	}

	c.log.Info("collecting VPN gateways")
	if snap.VPNGateways, err = c.clients.VPC.ListVPNGateways(ctx); err != nil && !c.skip(snap, SectionVPNGateways, err) {
		return nil, err
	}

	c.log.Info("collecting EC2 instances")
	if snap.Instances, snap.InstanceSummary, err = c.clients.EC2.ListInstances(ctx); err != nil && !c.skip(snap, SectionInstances, err) {
		return nil, err
	}

	c.log.Info("collecting security groups")
	if snap.SecurityGroups, err = c.clients.VPC.ListSecurityGroups(ctx); err != nil && !c.skip(snap, SectionSecurityGroups, err) {
		return nil, err
	}

	c.log.Info("collecting network ACLs")
	if snap.NetworkACLs, err = c.clients.VPC.ListNetworkACLs(ctx); err != nil && !c.skip(snap, SectionNetworkACLs, err) {
		return nil, err
	}

	c.log.Info("collecting VPC peering connections")
	if snap.Peerings, err = c.clients.VPC.ListVPCPeerings(ctx); err != nil && !c.skip(snap, SectionPeerings, err) {
		return nil, err
	}

	c.log.Info("collecting VPC endpoints")
	if snap.Endpoints, err = c.clients.VPC.ListVPCEndpoints(ctx); err != nil && !c.skip(snap, SectionEndpoints, err) {
		return nil, err
	}

	c.log.Info("collecting flow logs")
	if snap.FlowLogs, err = c.clients.VPC.ListFlowLogs(ctx); err != nil && !c.skip(snap, SectionFlowLogs, err) {
		return nil, err
	}

	c.log.Info("collecting load balancers")
	if snap.LoadBalancers, err = c.clients.ELB.ListLoadBalancers(ctx); err != nil && !c.skip(snap, SectionLoadBalancers, err) {
		return nil, err
	}

	if err := c.collectDirectConnect(ctx, snap); err != nil {
		return nil, err
	}

	sortSections(snap)
	classifySubnets(snap)

	for _, ref := range snap.MissingVPCRefs() {
		c.log.Warnf("referential check: %s", ref)
	}

	return snap, nil
}

// collectDirectConnect is tolerant of any Direct Connect failure: accounts
// without the service enabled reject these calls outright, and the rest of
// the report is still worth producing.
func (c *Collector) collectDirectConnect(ctx context.Context, snap *Snapshot) error {
	c.log.Info("collecting Direct Connect configuration")

	var err error
	if snap.DXConnections, err = c.clients.DX.ListConnections(ctx); err != nil {
		c.log.Warnf("could not collect Direct Connect info: %v", err)
		snap.Unavailable[SectionDirectConnect] = true
		return nil
	}
	if snap.DXVirtualInterfaces, err = c.clients.DX.ListVirtualInterfaces(ctx); err != nil {
		c.log.Warnf("could not collect Direct Connect virtual interfaces: %v", err)
		snap.Unavailable[SectionDirectConnect] = true
		return nil
	}
	if snap.DXGateways, err = c.clients.DX.ListGateways(ctx); err != nil {
		c.log.Warnf("could not collect Direct Connect gateways: %v", err)
		snap.Unavailable[SectionDirectConnect] = true
		return nil
	}
	return nil
}

// sortSections orders every section by primary resource id. API result
// ordering is not stable across calls and must not leak into the report.
func sortSections(s *Snapshot) {
	sort.Slice(s.VPCs, func(i, j int) bool { return s.VPCs[i].VPCID < s.VPCs[j].VPCID })
	sort.Slice(s.Subnets, func(i, j int) bool { return s.Subnets[i].SubnetID < s.Subnets[j].SubnetID })
	sort.Slice(s.RouteTables, func(i, j int) bool { return s.RouteTables[i].RouteTableID < s.RouteTables[j].RouteTableID })
	sort.Slice(s.InternetGateways, func(i, j int) bool { return s.InternetGateways[i].GatewayID < s.InternetGateways[j].GatewayID })
	sort.Slice(s.NATGateways, func(i, j int) bool { return s.NATGateways[i].GatewayID < s.NATGateways[j].GatewayID })
	sort.Slice(s.TransitGateways, func(i, j int) bool { return s.TransitGateways[i].GatewayID < s.TransitGateways[j].GatewayID })
	sort.Slice(s.VPNGateways, func(i, j int) bool { return s.VPNGateways[i].GatewayID < s.VPNGateways[j].GatewayID })
	sort.Slice(s.Instances, func(i, j int) bool { return s.Instances[i].InstanceID < s.Instances[j].InstanceID })
	sort.Slice(s.SecurityGroups, func(i, j int) bool { return s.SecurityGroups[i].GroupID < s.SecurityGroups[j].GroupID })
	sort.Slice(s.NetworkACLs, func(i, j int) bool { return s.NetworkACLs[i].NACLID < s.NetworkACLs[j].NACLID })
	sort.Slice(s.Peerings, func(i, j int) bool { return s.Peerings[i].PeeringID < s.Peerings[j].PeeringID })
	sort.Slice(s.Endpoints, func(i, j int) bool { return s.Endpoints[i].EndpointID < s.Endpoints[j].EndpointID })
	sort.Slice(s.FlowLogs, func(i, j int) bool { return s.FlowLogs[i].FlowLogID < s.FlowLogs[j].FlowLogID })
	sort.Slice(s.LoadBalancers, func(i, j int) bool { return s.LoadBalancers[i].Name < s.LoadBalancers[j].Name })
	sort.Slice(s.DXConnections, func(i, j int) bool { return s.DXConnections[i].ConnectionID < s.DXConnections[j].ConnectionID })
	sort.Slice(s.DXVirtualInterfaces, func(i, j int) bool { return s.DXVirtualInterfaces[i].VIFID < s.DXVirtualInterfaces[j].VIFID })
	sort.Slice(s.DXGateways, func(i, j int) bool { return s.DXGateways[i].GatewayID < s.DXGateways[j].GatewayID })
}
