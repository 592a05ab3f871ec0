package marketplace

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	catalogrepo "github.com/studex/marketplace/internal/catalog/repository"
	"github.com/studex/marketplace/internal/identity"
	"github.com/studex/marketplace/internal/marketplace/usecase/command"
	"github.com/studex/marketplace/internal/marketplace/usecase/query"
	txdomain "github.com/studex/marketplace/internal/transaction/domain"
	txrepo "github.com/studex/marketplace/internal/transaction/repository"
	userdomain "github.com/studex/marketplace/internal/user/domain"
	userrepo "github.com/studex/marketplace/internal/user/repository"
)

// ProvideGenerator provides the process-wide ID generator.
func ProvideGenerator() *identity.Generator {
	return identity.NewGenerator()
}

// ProvideUserRepository provides the user repository.
func ProvideUserRepository() userdomain.UserRepository {
	return userrepo.NewMemoryUserRepositoryWithTracing()
}

// ProvideCatalog provides the item catalog.
func ProvideCatalog() catalogdomain.Catalog {
	return catalogrepo.NewMemoryCatalogWithTracing()
}

// ProvideTransactionRepository provides the transaction ledger.
func ProvideTransactionRepository() txdomain.TransactionRepository {
	return txrepo.NewMemoryTransactionRepository()
}

// Command Handlers Providers
func ProvideRegisterUserHandler(users userdomain.UserRepository, ids *identity.Generator) *command.RegisterUserHandler {
	return command.NewRegisterUserHandler(users, ids)
}

func ProvideLoginUserHandler(users userdomain.UserRepository) *command.LoginUserHandler {
	return command.NewLoginUserHandler(users)
}

func ProvideUploadBookHandler(catalog catalogdomain.Catalog, ids *identity.Generator) *command.UploadBookHandler {
	return command.NewUploadBookHandler(catalog, ids)
}

func ProvideUploadNotesHandler(catalog catalogdomain.Catalog, ids *identity.Generator) *command.UploadNotesHandler {
	return command.NewUploadNotesHandler(catalog, ids)
}

func ProvideUploadPastPaperHandler(catalog catalogdomain.Catalog, ids *identity.Generator) *command.UploadPastPaperHandler {
	return command.NewUploadPastPaperHandler(catalog, ids)
}

func ProvideUploadFreeResourceHandler(catalog catalogdomain.Catalog, ids *identity.Generator) *command.UploadFreeResourceHandler {
	return command.NewUploadFreeResourceHandler(catalog, ids)
}

func ProvideCreateTransactionHandler(transactions txdomain.TransactionRepository, ids *identity.Generator) *command.CreateTransactionHandler {
	return command.NewCreateTransactionHandler(transactions, ids)
}

func ProvideSubmitReviewHandler(transactions txdomain.TransactionRepository, ids *identity.Generator) *command.SubmitReviewHandler {
	return command.NewSubmitReviewHandler(transactions, ids)
}

// Query Handlers Providers
func ProvideSearchCatalogHandler(catalog catalogdomain.Catalog) *query.SearchCatalogHandler {
	return query.NewSearchCatalogHandler(catalog)
}

func ProvideFilterCatalogHandler(catalog catalogdomain.Catalog) *query.FilterCatalogHandler {
	return query.NewFilterCatalogHandler(catalog)
}

func ProvideSellerItemsHandler(catalog catalogdomain.Catalog) *query.SellerItemsHandler {
	return query.NewSellerItemsHandler(catalog)
}

func ProvideUserStatsHandler() *query.UserStatsHandler {
	return query.NewUserStatsHandler()
}

// CommandHandlers is a struct that holds all command handlers
type CommandHandlers struct {
	RegisterHandler    *command.RegisterUserHandler
	LoginHandler       *command.LoginUserHandler
	UploadBook         *command.UploadBookHandler
	UploadNotes        *command.UploadNotesHandler
	UploadPastPaper    *command.UploadPastPaperHandler
	UploadFreeResource *command.UploadFreeResourceHandler
	CreateTransaction  *command.CreateTransactionHandler
	SubmitReview       *command.SubmitReviewHandler
}

// QueryHandlers is a struct that holds all query handlers
type QueryHandlers struct {
	Search      *query.SearchCatalogHandler
	Filter      *query.FilterCatalogHandler
	SellerItems *query.SellerItemsHandler
	UserStats   *query.UserStatsHandler
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	uploadBook *command.UploadBookHandler,
	uploadNotes *command.UploadNotesHandler,
	uploadPastPaper *command.UploadPastPaperHandler,
	uploadFreeResource *command.UploadFreeResourceHandler,
	createTransaction *command.CreateTransactionHandler,
	submitReview *command.SubmitReviewHandler,
) *CommandHandlers {
	return &CommandHandlers{
		RegisterHandler:    registerHandler,
		LoginHandler:       loginHandler,
		UploadBook:         uploadBook,
		UploadNotes:        uploadNotes,
		UploadPastPaper:    uploadPastPaper,
		UploadFreeResource: uploadFreeResource,
		CreateTransaction:  createTransaction,
		SubmitReview:       submitReview,
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(
	search *query.SearchCatalogHandler,
	filter *query.FilterCatalogHandler,
	sellerItems *query.SellerItemsHandler,
	userStats *query.UserStatsHandler,
) *QueryHandlers {
	return &QueryHandlers{
		Search:      search,
		Filter:      filter,
		SellerItems: sellerItems,
		UserStats:   userStats,
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideGenerator,
	ProvideUserRepository,
	ProvideCatalog,
	ProvideTransactionRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideRegisterUserHandler,
	ProvideLoginUserHandler,
	ProvideUploadBookHandler,
	ProvideUploadNotesHandler,
	ProvideUploadPastPaperHandler,
	ProvideUploadFreeResourceHandler,
	ProvideCreateTransactionHandler,
	ProvideSubmitReviewHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	ProvideSearchCatalogHandler,
	ProvideFilterCatalogHandler,
	ProvideSellerItemsHandler,
	ProvideUserStatsHandler,
	ProvideQueryHandlers,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// ProvideMetrics provides the marketplace metrics.
func ProvideMetrics(reg prometheus.Registerer) *Metrics {
	return NewMetrics(reg)
}

var ServiceSet = wire.NewSet(
	AllHandlersSet,
	ProvideMetrics,
	NewService,
)
