package marketplace

import (
	"context"

	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/marketplace/usecase/command"
	"github.com/studex/marketplace/internal/marketplace/usecase/query"
	txdomain "github.com/studex/marketplace/internal/transaction/domain"
	userdomain "github.com/studex/marketplace/internal/user/domain"
	"github.com/studex/marketplace/kafka"
	"github.com/studex/marketplace/pkg/logger"
)

// Item kind labels used in metrics and events.
const (
	KindBook         = "book"
	KindNotes        = "notes"
	KindPastPaper    = "past_paper"
	KindFreeResource = "free_resource"
)

// EventPublisher publishes marketplace events. Nil disables
// publishing; the engine works without a broker.
type EventPublisher interface {
	PublishItemListed(ctx context.Context, event kafka.ItemListedEvent) error
	PublishItemPurchased(ctx context.Context, event kafka.ItemPurchasedEvent) error
}

// Service is the marketplace facade: the single entry point the
// presentation layer calls. It delegates to the command and query
// handlers and owns the cross-cutting concerns (logging, metrics,
// events).
type Service struct {
	commands  *CommandHandlers
	queries   *QueryHandlers
	catalog   catalogdomain.Catalog
	ledger    txdomain.TransactionRepository
	metrics   *Metrics
	publisher EventPublisher
}

// NewService creates the facade.
func NewService(
	commands *CommandHandlers,
	queries *QueryHandlers,
	catalog catalogdomain.Catalog,
	ledger txdomain.TransactionRepository,
	metrics *Metrics,
	publisher EventPublisher,
) *Service {
	return &Service{
		commands:  commands,
		queries:   queries,
		catalog:   catalog,
		ledger:    ledger,
		metrics:   metrics,
		publisher: publisher,
	}
}

// RegisterUser registers a new account. Email and CNIC must be unique
// across the system.
func (s *Service) RegisterUser(ctx context.Context, name, cnic, email, password, phone, address string) (*userdomain.User, error) {
	user, err := s.commands.RegisterHandler.Handle(command.RegisterUserCommand{
		Name:     name,
		CNIC:     cnic,
		Email:    email,
		Password: password,
		Phone:    phone,
		Address:  address,
	})
	if err != nil {
		return nil, err
	}
	s.metrics.registrations.Inc()
	logger.Info(ctx).
		Str("user_id", user.ID).
		Msg("User registered")
	return user, nil
}

// Login authenticates by email and password. It returns nil on any
// mismatch without saying which part was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*userdomain.User, error) {
	return s.commands.LoginHandler.Handle(command.LoginUserCommand{
		Email:    email,
		Password: password,
	})
}

// UploadBook lists a book for sale.
func (s *Service) UploadBook(ctx context.Context, cmd command.UploadBookCommand) (*catalogdomain.Book, error) {
	book, err := s.commands.UploadBook.Handle(cmd)
	if err != nil {
		return nil, err
	}
	s.itemListed(ctx, book, KindBook)
	return book, nil
}

// UploadNotes lists notes for sale.
func (s *Service) UploadNotes(ctx context.Context, cmd command.UploadNotesCommand) (*catalogdomain.Notes, error) {
	notes, err := s.commands.UploadNotes.Handle(cmd)
	if err != nil {
		return nil, err
	}
	s.itemListed(ctx, notes, KindNotes)
	return notes, nil
}

// UploadPastPaper lists a past paper for sale.
func (s *Service) UploadPastPaper(ctx context.Context, cmd command.UploadPastPaperCommand) (*catalogdomain.PastPaper, error) {
	paper, err := s.commands.UploadPastPaper.Handle(cmd)
	if err != nil {
		return nil, err
	}
	s.itemListed(ctx, paper, KindPastPaper)
	return paper, nil
}

// UploadFreeResource lists a free downloadable resource.
func (s *Service) UploadFreeResource(ctx context.Context, cmd command.UploadFreeResourceCommand) (*catalogdomain.FreeResource, error) {
	resource, err := s.commands.UploadFreeResource.Handle(cmd)
	if err != nil {
		return nil, err
	}
	s.itemListed(ctx, resource, KindFreeResource)
	return resource, nil
}

func (s *Service) itemListed(ctx context.Context, item catalogdomain.Item, kind string) {
	s.metrics.listings.WithLabelValues(kind).Inc()
	s.metrics.catalogItems.Set(float64(s.catalog.Count()))
	logger.Info(ctx).
		Str("item_id", item.ID()).
		Str("kind", kind).
		Str("seller_id", item.Uploader().ID).
		Msg("Item listed")

	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishItemListed(ctx, kafka.ItemListedEvent{
		ItemID:   item.ID(),
		ItemKind: kind,
		SellerID: item.Uploader().ID,
		Category: item.Category(),
		Subject:  item.Subject(),
	}); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to publish item listed event")
	}
}

// CreateTransaction buys an item. Order creation and payment are one
// atomic call: on success the payment is already completed and the
// item sold.
func (s *Service) CreateTransaction(ctx context.Context, buyer *userdomain.User, item catalogdomain.Item, method string) (*txdomain.Transaction, error) {
	return s.createTransaction(ctx, buyer, item, method, 0)
}

// CreateTransactionWithCredits buys an item redeeming credit points.
func (s *Service) CreateTransactionWithCredits(ctx context.Context, buyer *userdomain.User, item catalogdomain.Item, method string, credits int) (*txdomain.Transaction, error) {
	return s.createTransaction(ctx, buyer, item, method, credits)
}

func (s *Service) createTransaction(ctx context.Context, buyer *userdomain.User, item catalogdomain.Item, method string, credits int) (*txdomain.Transaction, error) {
	t, err := s.commands.CreateTransaction.Handle(command.CreateTransactionCommand{
		Buyer:         buyer,
		Item:          item,
		PaymentMethod: method,
		Credits:       credits,
	})
	if err != nil {
		s.metrics.transactions.WithLabelValues("rejected").Inc()
		return nil, err
	}
	s.metrics.transactions.WithLabelValues("completed").Inc()
	if t.CreditsUsed() > 0 {
		s.metrics.creditsRedeemed.Add(float64(t.CreditsUsed()))
	}
	logger.Info(ctx).
		Str("transaction_id", t.TransactionID()).
		Str("item_id", t.Item().ID()).
		Str("buyer_id", t.Buyer().ID).
		Str("seller_id", t.Seller().ID).
		Float64("total", t.Total()).
		Msg("Transaction completed")

	if s.publisher != nil {
		if err := s.publisher.PublishItemPurchased(ctx, kafka.ItemPurchasedEvent{
			TransactionID: t.TransactionID(),
			ItemID:        t.Item().ID(),
			BuyerID:       t.Buyer().ID,
			SellerID:      t.Seller().ID,
			Amount:        t.Total(),
			CreditsUsed:   t.CreditsUsed(),
			PaymentMethod: t.PaymentMethod(),
		}); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to publish item purchased event")
		}
	}
	return t, nil
}

// SubmitReview records one party's review of the other and awards the
// reviewer credits.
func (s *Service) SubmitReview(ctx context.Context, transactionID string, reviewer *userdomain.User, rating int, comment string) (*txdomain.Review, error) {
	review, err := s.commands.SubmitReview.Handle(command.SubmitReviewCommand{
		TransactionID: transactionID,
		Reviewer:      reviewer,
		Rating:        rating,
		Comment:       comment,
	})
	if err != nil {
		return nil, err
	}
	logger.Info(ctx).
		Str("transaction_id", transactionID).
		Str("reviewer_id", reviewer.ID).
		Int("rating", rating).
		Msg("Review submitted")
	return review, nil
}

// Search returns the items matching the keyword.
func (s *Service) Search(ctx context.Context, keyword string) []catalogdomain.Item {
	return s.queries.Search.Handle(query.SearchCatalogQuery{Keyword: keyword})
}

// FilterItems returns the items passing every set predicate.
func (s *Service) FilterItems(ctx context.Context, f catalogdomain.Filter) ([]catalogdomain.Item, error) {
	return s.queries.Filter.Handle(query.FilterCatalogQuery{Filter: f})
}

// ItemsBySeller returns a seller's listings.
func (s *Service) ItemsBySeller(ctx context.Context, seller *userdomain.User) []catalogdomain.Item {
	return s.queries.SellerItems.Handle(query.SellerItemsQuery{Seller: seller})
}

// UserStats derives one user's marketplace statistics.
func (s *Service) UserStats(ctx context.Context, user *userdomain.User) (*query.UserStats, error) {
	return s.queries.UserStats.Handle(query.UserStatsQuery{User: user})
}

// Transaction retrieves a transaction from the ledger.
func (s *Service) Transaction(ctx context.Context, id string) (*txdomain.Transaction, error) {
	return s.ledger.FindByID(id)
}

// Catalog exposes the underlying item store for read access.
func (s *Service) Catalog() catalogdomain.Catalog {
	return s.catalog
}
