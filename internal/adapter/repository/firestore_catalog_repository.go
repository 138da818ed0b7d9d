package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
	"philatelysamaaj/pkg/utils"
)

type firestoreCatalogRepository struct {
	client *firestore.Client
}

func NewFirestoreCatalogRepository(client *firestore.Client) repository.CatalogRepository {
	return &firestoreCatalogRepository{
		client: client,
	}
}

func (r *firestoreCatalogRepository) Create(ctx context.Context, item *entity.CatalogItem) error {
	ref := r.client.Collection(catalogCollection).NewDoc()
	item.ID = ref.ID

	if _, err := ref.Set(ctx, item); err != nil {
		return errors.Internal("Failed to create catalog item", err)
	}
	return nil
}

func (r *firestoreCatalogRepository) GetByID(ctx context.Context, id string) (*entity.CatalogItem, error) {
	doc, err := r.client.Collection(catalogCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, getError("Catalog item", err)
	}

	var item entity.CatalogItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse catalog item", err)
	}
	item.ID = doc.Ref.ID

	return &item, nil
}

// List pushes equality filters down to Firestore. Search and year ranges are
// applied afterwards, so those listings page in memory.
func (r *firestoreCatalogRepository) List(ctx context.Context, filter entity.CatalogFilter, limit, offset int) ([]*entity.CatalogItem, int64, error) {
	query := r.client.Collection(catalogCollection).Query
	equality := map[string]string{
		"userId":       filter.UserID,
		"itemCategory": filter.Category,
		"postalCircle": filter.PostalCircle,
		"rarity":       filter.Rarity,
		"itemType":     filter.ItemType,
	}
	for field, value := range equality {
		if value != "" {
			query = query.Where(field, "==", value)
		}
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	if filter.HasInMemoryCriteria() {
		all, err := r.collect(ctx, query)
		if err != nil {
			return nil, 0, err
		}
		matched := make([]*entity.CatalogItem, 0, len(all))
		for _, item := range all {
			if filter.Matches(item) {
				matched = append(matched, item)
			}
		}
		return utils.Window(matched, offset, limit), int64(len(matched)), nil
	}

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count catalog items", err)
	}
	total := int64(len(countDocs))

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	items, err := r.collect(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *firestoreCatalogRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.CatalogItem, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var items []*entity.CatalogItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list catalog items", err)
		}

		var item entity.CatalogItem
		if err := doc.DataTo(&item); err != nil {
			logger.Warn("skipping malformed catalog item %s: %v", doc.Ref.ID, err)
			continue
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}
	return items, nil
}
