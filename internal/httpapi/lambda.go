package httpapi

import (
	"context"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
)

// APIGateway adapts Handle to an API Gateway proxy integration.
func (h *Handler) APIGateway(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp := h.Handle(ctx, Request{
		Method: event.HTTPMethod,
		Query:  proxyQuery(event),
	})

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func proxyQuery(event events.APIGatewayProxyRequest) url.Values {
	query := url.Values{}
	if len(event.MultiValueQueryStringParameters) > 0 {
		for k, vs := range event.MultiValueQueryStringParameters {
			for _, v := range vs {
				query.Add(k, v)
			}
		}
		return query
	}
	for k, v := range event.QueryStringParameters {
		query.Set(k, v)
	}
	return query
}
