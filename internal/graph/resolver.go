package graph

import (
	"context"

	"bookshelf/internal/core"
	"bookshelf/internal/errs"
	"bookshelf/internal/models"

	"go.uber.org/zap"
)

// Resolver is the root of both Query and Mutation.
type Resolver struct {
	logs *zap.SugaredLogger
	svc  Service
}

func NewResolver(logger *zap.SugaredLogger, svc Service) *Resolver {
	return &Resolver{
		logs: logger,
		svc:  svc,
	}
}

type addUserArgs struct {
	Username string
	Email    string
	Password string
}

type loginArgs struct {
	Email    string
	Password string
}

type BookInput struct {
	BookID      string
	Authors     *[]string
	Description *string
	Title       string
	Image       *string
	Link        *string
}

func (in BookInput) toModel() models.SavedBook {
	book := models.SavedBook{
		BookID: in.BookID,
		Title:  in.Title,
	}
	if in.Authors != nil {
		book.Authors = *in.Authors
	}
	if in.Description != nil {
		book.Description = *in.Description
	}
	if in.Image != nil {
		book.Image = *in.Image
	}
	if in.Link != nil {
		book.Link = *in.Link
	}
	return book
}

type saveBookArgs struct {
	BookData BookInput
}

type removeBookArgs struct {
	BookID string
}

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	user, err := r.svc.Me(ctx)
	if err != nil {
		return nil, r.fail("me", err)
	}
	return &userResolver{user: user}, nil
}

func (r *Resolver) AddUser(ctx context.Context, args addUserArgs) (*authResolver, error) {
	res, err := r.svc.AddUser(ctx, core.SignupMessage{
		Username: args.Username,
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return nil, r.fail("addUser", err)
	}
	return &authResolver{result: res}, nil
}

func (r *Resolver) Login(ctx context.Context, args loginArgs) (*authResolver, error) {
	res, err := r.svc.Login(ctx, core.LoginMessage{
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return nil, r.fail("login", err)
	}
	return &authResolver{result: res}, nil
}

func (r *Resolver) SaveBook(ctx context.Context, args saveBookArgs) (*userResolver, error) {
	user, err := r.svc.SaveBook(ctx, args.BookData.toModel())
	if err != nil {
		return nil, r.fail("saveBook", err)
	}
	return &userResolver{user: user}, nil
}

func (r *Resolver) RemoveBook(ctx context.Context, args removeBookArgs) (*userResolver, error) {
	user, err := r.svc.RemoveBook(ctx, args.BookID)
	if err != nil {
		return nil, r.fail("removeBook", err)
	}
	return &userResolver{user: user}, nil
}

// fail logs err and returns the client-safe form of it. Untyped errors lose their
// detail and surface as internal errors.
func (r *Resolver) fail(field string, err error) error {
	public := errs.Public(err)
	if public.Kind == errs.KindInternal {
		r.logs.Errorw("resolver failed", "field", field, "error", err)
	} else {
		r.logs.Infow("resolver rejected request", "field", field, "code", public.Kind, "error", err)
	}
	return public
}
