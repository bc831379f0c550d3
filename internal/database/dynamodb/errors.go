package dynamodb

import (
	"errors"
	"net"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/database"
)

// classify tags an SDK error with its failure kind.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var (
		notFound   *types.ResourceNotFoundException
		throughput *types.ProvisionedThroughputExceededException
		limit      *types.RequestLimitExceeded
		sendErr    *smithyhttp.RequestSendError
		netErr     net.Error
		apiErr     smithy.APIError
	)

	switch {
	case errors.As(err, &notFound):
		return database.Classify(database.ErrTableNotFound, err)
	case errors.As(err, &throughput), errors.As(err, &limit):
		return database.Classify(database.ErrThroughput, err)
	case errors.As(err, &sendErr), errors.As(err, &netErr):
		return database.Classify(database.ErrConnection, err)
	case errors.As(err, &apiErr):
		switch apiErr.ErrorCode() {
		case "ThrottlingException":
			return database.Classify(database.ErrThroughput, err)
		case "ValidationException", "SerializationException":
			return database.Classify(database.ErrInvalidItem, err)
		case "UnrecognizedClientException", "AccessDeniedException", "ExpiredTokenException",
			"InvalidSignatureException", "MissingAuthenticationTokenException":
			return database.Classify(database.ErrConnection, err)
		}
	case strings.Contains(err.Error(), "failed to retrieve credentials"):
		// the signer reports missing credentials as plain text
		return database.Classify(database.ErrConnection, err)
	}
	return err
}
