package repository

//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks
//go:generate mockgen -source=file_metadata_repository.go -destination=mocks/mock_file_metadata_repository.go -package=mocks
//go:generate mockgen -source=catalog_repository.go -destination=mocks/mock_catalog_repository.go -package=mocks
//go:generate mockgen -source=auction_repository.go -destination=mocks/mock_auction_repository.go -package=mocks
//go:generate mockgen -source=post_repository.go -destination=mocks/mock_post_repository.go -package=mocks
//go:generate mockgen -source=event_repository.go -destination=mocks/mock_event_repository.go -package=mocks
//go:generate mockgen -source=thread_repository.go -destination=mocks/mock_thread_repository.go -package=mocks
//go:generate mockgen -source=ledger_repository.go -destination=mocks/mock_ledger_repository.go -package=mocks
