package elb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

type ELBAPI interface {
	DescribeLoadBalancers(ctx context.Context, params *elbv2.DescribeLoadBalancersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeLoadBalancersOutput, error)
}

type Client struct {
	api ELBAPI
}

func NewClient(api ELBAPI) *Client {
	return &Client{api: api}
}

func (c *Client) ListLoadBalancers(ctx context.Context) ([]LoadBalancerInfo, error) {
	var lbs []LoadBalancerInfo
	var marker *string

	for {
		out, err := c.api.DescribeLoadBalancers(ctx, &elbv2.DescribeLoadBalancersInput{
			Marker: marker,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeLoadBalancers: %w", err)
		}

		for _, lb := range out.LoadBalancers {
			var state string
			if lb.State != nil {
				state = string(lb.State.Code)
			}
			lbs = append(lbs, LoadBalancerInfo{
				Name:    aws.ToString(lb.LoadBalancerName),
				Type:    string(lb.Type),
				Scheme:  string(lb.Scheme),
				State:   state,
				VPCID:   aws.ToString(lb.VpcId),
				DNSName: aws.ToString(lb.DNSName),
			})
		}

		if out.NextMarker == nil {
			break
		}
		marker = out.NextMarker
	}
	return lbs, nil
}
