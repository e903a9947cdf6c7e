// Package report renders a collected snapshot into a single markdown
// document: header metadata, one table per resource type, and the notes
// the tables need to be read correctly.
package report

import (
	"fmt"
	"strings"

	"netdoc.dev/aws-netdoc/internal/collector"
)

const unavailableSection = "_Section unavailable (missing permissions)_\n"

// Render produces the complete markdown document for a snapshot. Output is
// deterministic for a given snapshot; the date in the header is the only
// field that changes between runs against an unchanged account.
func Render(snap *collector.Snapshot) string {
	var b strings.Builder

	b.WriteString("# AWS Network Configuration\n\n")
	fmt.Fprintf(&b, "**Region:** %s  \n", snap.Metadata.Region)
	account := snap.Metadata.AccountID
	if account == "" {
		account = "unknown"
	}
	fmt.Fprintf(&b, "**Account:** %s  \n", account)
	fmt.Fprintf(&b, "**Date:** %s\n\n", snap.Metadata.Date)
	b.WriteString("---\n")

	section := func(sec collector.Section, body func() string) {
		fmt.Fprintf(&b, "\n## %s\n\n", string(sec))
		if snap.SectionUnavailable(sec) {
			b.WriteString(unavailableSection)
			return
		}
		b.WriteString(body())
	}

	section(collector.SectionVPCs, func() string { return formatVPCs(snap.VPCs) })
	section(collector.SectionSubnets, func() string { return formatSubnets(snap.Subnets) })
	section(collector.SectionRouteTables, func() string { return formatRouteTables(snap.RouteTables) })
	section(collector.SectionInternetGateways, func() string { return formatInternetGateways(snap.InternetGateways) })
	section(collector.SectionNATGateways, func() string { return formatNATGateways(snap.NATGateways) })
	section(collector.SectionTransitGateways, func() string { return formatTransitGateways(snap.TransitGateways) })
	section(collector.SectionVPNGateways, func() string { return formatVPNGateways(snap.VPNGateways) })
	section(collector.SectionInstances, func() string { return formatInstances(snap.Instances) })
	section(collector.SectionSecurityGroups, func() string { return formatSecurityGroups(snap.SecurityGroups) })
	section(collector.SectionNetworkACLs, func() string { return formatNetworkACLs(snap.NetworkACLs) })
	section(collector.SectionPeerings, func() string { return formatPeerings(snap.Peerings) })
	section(collector.SectionEndpoints, func() string { return formatEndpoints(snap.Endpoints) })
	section(collector.SectionFlowLogs, func() string { return formatFlowLogs(snap.FlowLogs) })
	section(collector.SectionLoadBalancers, func() string { return formatLoadBalancers(snap.LoadBalancers) })

	if snap.HasDirectConnect() || snap.SectionUnavailable(collector.SectionDirectConnect) {
		section(collector.SectionDirectConnect, func() string {
			return formatDirectConnect(snap.DXConnections, snap.DXVirtualInterfaces, snap.DXGateways)
		})
	}

	return b.String()
}
