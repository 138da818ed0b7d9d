package handler

import (
	"philatelysamaaj/internal/usecase"
)

var (
	authHandler        *AuthHandler
	userHandler        *UserHandler
	catalogHandler     *CatalogHandler
	auctionHandler     *AuctionHandler
	forumHandler       *ForumHandler
	eventHandler       *EventHandler
	negotiationHandler *NegotiationHandler
	accountHandler     *AccountHandler
	fileHandler        *FileHandler
	stampHandler       *StampHandler
	adminHandler       *AdminHandler
)

type UseCases struct {
	Auth        *usecase.AuthUseCase
	User        *usecase.UserUseCase
	Catalog     *usecase.CatalogUseCase
	Auction     *usecase.AuctionUseCase
	Forum       *usecase.ForumUseCase
	Event       *usecase.EventUseCase
	Negotiation *usecase.NegotiationUseCase
	Account     *usecase.AccountUseCase
	File        *usecase.FileUseCase
	Stamp       *usecase.StampUseCase
}

func Setup(uc UseCases) {
	authHandler = NewAuthHandler(uc.Auth)
	userHandler = NewUserHandler(uc.User)
	catalogHandler = NewCatalogHandler(uc.Catalog)
	auctionHandler = NewAuctionHandler(uc.Auction)
	forumHandler = NewForumHandler(uc.Forum)
	eventHandler = NewEventHandler(uc.Event)
	negotiationHandler = NewNegotiationHandler(uc.Negotiation)
	accountHandler = NewAccountHandler(uc.Account)
	fileHandler = NewFileHandler(uc.File)
	stampHandler = NewStampHandler(uc.Stamp)
	adminHandler = NewAdminHandler(uc.User, uc.Account, uc.Event, uc.Auction)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetAuctionHandler() *AuctionHandler {
	return auctionHandler
}

func GetForumHandler() *ForumHandler {
	return forumHandler
}

func GetEventHandler() *EventHandler {
	return eventHandler
}

func GetNegotiationHandler() *NegotiationHandler {
	return negotiationHandler
}

func GetAccountHandler() *AccountHandler {
	return accountHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetStampHandler() *StampHandler {
	return stampHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
