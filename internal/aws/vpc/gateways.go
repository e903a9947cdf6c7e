package vpc

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
)

func (c *Client) ListInternetGateways(ctx context.Context) ([]InternetGatewayInfo, error) {
	var igws []InternetGatewayInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeInternetGateways(ctx, &awsec2.DescribeInternetGatewaysInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeInternetGateways: %w", err)
		}

		for _, igw := range out.InternetGateways {
			state := "detached"
			attachedVPC := "Not attached"
			if len(igw.Attachments) > 0 {
				state = string(igw.Attachments[0].State)
				attachedVPC = aws.ToString(igw.Attachments[0].VpcId)
			}
			igws = append(igws, InternetGatewayInfo{
				GatewayID:   aws.ToString(igw.InternetGatewayId),
				Name:        nameFromTags(igw.Tags),
				State:       state,
				AttachedVPC: attachedVPC,
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return igws, nil
}

func (c *Client) ListNATGateways(ctx context.Context) ([]NATGatewayInfo, error) {
	var nats []NATGatewayInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeNatGateways(ctx, &awsec2.DescribeNatGatewaysInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeNatGateways: %w", err)
		}

		for _, nat := range out.NatGateways {
			publicIP, privateIP := "N/A", "N/A"
			if len(nat.NatGatewayAddresses) > 0 {
				addr := nat.NatGatewayAddresses[0]
				if addr.PublicIp != nil {
					publicIP = aws.ToString(addr.PublicIp)
				}
				if addr.PrivateIp != nil {
					privateIP = aws.ToString(addr.PrivateIp)
				}
			}
			nats = append(nats, NATGatewayInfo{
				GatewayID: aws.ToString(nat.NatGatewayId),
				Name:      nameFromTags(nat.Tags),
				VPCID:     aws.ToString(nat.VpcId),
				SubnetID:  aws.ToString(nat.SubnetId),
				State:     string(nat.State),
				PublicIP:  publicIP,
				PrivateIP: privateIP,
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return nats, nil
}

func (c *Client) ListTransitGateways(ctx context.Context) ([]TransitGatewayInfo, error) {
	var tgws []TransitGatewayInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeTransitGateways(ctx, &awsec2.DescribeTransitGatewaysInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeTransitGateways: %w", err)
		}

		for _, tgw := range out.TransitGateways {
			asn, routeTable := "N/A", "N/A"
			if tgw.Options != nil {
				if tgw.Options.AmazonSideAsn != nil {
					asn = strconv.FormatInt(aws.ToInt64(tgw.Options.AmazonSideAsn), 10)
				}
				if tgw.Options.AssociationDefaultRouteTableId != nil {
					routeTable = aws.ToString(tgw.Options.AssociationDefaultRouteTableId)
				}
			}
			tgws = append(tgws, TransitGatewayInfo{
				GatewayID:           aws.ToString(tgw.TransitGatewayId),
				Name:                nameFromTags(tgw.Tags),
				State:               string(tgw.State),
				AmazonSideASN:       asn,
				DefaultRouteTableID: routeTable,
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return tgws, nil
}

// ListVPNGateways returns all virtual private gateways. DescribeVpnGateways
// is one of the few EC2 describe calls that does not paginate.
func (c *Client) ListVPNGateways(ctx context.Context) ([]VPNGatewayInfo, error) {
	out, err := c.api.DescribeVpnGateways(ctx, &awsec2.DescribeVpnGatewaysInput{})
	if err != nil {
		return nil, fmt.Errorf("DescribeVpnGateways: %w", err)
	}

	var vgws []VPNGatewayInfo
	for _, vgw := range out.VpnGateways {
		asn := "N/A"
		if vgw.AmazonSideAsn != nil {
			asn = strconv.FormatInt(aws.ToInt64(vgw.AmazonSideAsn), 10)
		}
		attachedVPC := "Not attached"
		if len(vgw.VpcAttachments) > 0 {
			attachedVPC = aws.ToString(vgw.VpcAttachments[0].VpcId)
		}
		vgws = append(vgws, VPNGatewayInfo{
			GatewayID:     aws.ToString(vgw.VpnGatewayId),
			Name:          nameFromTags(vgw.Tags),
			State:         string(vgw.State),
			Type:          string(vgw.Type),
			AmazonSideASN: asn,
			AttachedVPC:   attachedVPC,
		})
	}
	return vgws, nil
}
