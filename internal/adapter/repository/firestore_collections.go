package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"philatelysamaaj/pkg/errors"
)

const (
	usersCollection        = "userDetails"
	catalogCollection      = "philatelicItems"
	auctionsCollection     = "auctions"
	postsCollection        = "posts"
	eventsCollection       = "events"
	threadsCollection      = "Chats"
	fileMetadataCollection = "fileMetadata"
)

// getError maps a failed document read to a NotFound or Internal AppError.
func getError(resource string, err error) error {
	if status.Code(err) == codes.NotFound {
		return errors.NotFound(resource, err)
	}
	return errors.Internal("Failed to get "+resource, err)
}
