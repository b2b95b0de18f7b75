package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/api/shared"
	"github.com/phrazzld/quill-api/internal/service"
	"github.com/phrazzld/quill-api/internal/store"
)

// Dispatcher is the single operation surface. It maps each named operation
// to exactly one service call, decoding raw arguments on the way in and
// normalizing results and failures on the way out.
type Dispatcher struct {
	users  service.UserService
	posts  service.PostService
	logger *slog.Logger
	ops    map[string]operationFunc
}

// operationFunc resolves one named operation from its raw arguments.
type operationFunc func(ctx context.Context, args json.RawMessage) (any, error)

// queryRequest is the envelope every request to the dispatch endpoint uses.
type queryRequest struct {
	Operation string          `json:"operation"`
	Arguments json.RawMessage `json:"arguments"`
}

// queryResponse wraps every successful result.
type queryResponse struct {
	Data any `json:"data"`
}

// NewDispatcher creates a Dispatcher over the given services and registers
// the full operation surface.
func NewDispatcher(users service.UserService, posts service.PostService, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	d := &Dispatcher{
		users:  users,
		posts:  posts,
		logger: log.With(slog.String("component", "dispatcher")),
	}
	d.ops = map[string]operationFunc{
		"createUser":   d.createUser,
		"login":        d.login,
		"createPost":   d.createPost,
		"posts":        d.listPosts,
		"post":         d.getPost,
		"updatePost":   d.updatePost,
		"deletePost":   d.deletePost,
		"user":         d.currentUser,
		"updateStatus": d.updateStatus,
	}
	return d
}

// Handle serves the dispatch endpoint. Success responds 200 with {"data"};
// any failure responds with the carried status and {message, status, data}.
func (d *Dispatcher) Handle(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithFailure(w, r, http.StatusBadRequest, "Invalid request format", nil, err)
		return
	}

	op, ok := d.ops[req.Operation]
	if !ok {
		shared.RespondWithFailure(w, r, http.StatusBadRequest,
			fmt.Sprintf("Unknown operation %q", req.Operation), nil, nil)
		return
	}

	result, err := op(r.Context(), req.Arguments)
	if err != nil {
		status, message, data := MapError(err)
		shared.RespondWithFailure(w, r, status, message, data, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, queryResponse{Data: result})
}

// decodeArgs unmarshals the raw arguments into v. Absent arguments decode
// as an empty object so argument-less operations stay uniform.
func decodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: malformed arguments: %v", errBadArguments, err)
	}
	return nil
}

// errBadArguments marks argument envelopes that could not be decoded.
var errBadArguments = fmt.Errorf("bad arguments")

// parsePostID parses a post identifier argument. A malformed ID cannot name
// any post, so it surfaces as the post being absent.
func parsePostID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, store.ErrPostNotFound
	}
	return id, nil
}

func (d *Dispatcher) createUser(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	user, err := d.users.Register(ctx, in.Email, in.Password, in.Name)
	if err != nil {
		return nil, err
	}
	return NewUserResponse(user), nil
}

func (d *Dispatcher) login(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	result, err := d.users.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	return AuthResponse{Token: result.Token, UserID: result.UserID.String()}, nil
}

func (d *Dispatcher) createPost(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	post, err := d.posts.Create(ctx, in.Title, in.Content, in.ImageURL)
	if err != nil {
		return nil, err
	}
	return NewPostResponse(post), nil
}

func (d *Dispatcher) listPosts(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Page int `json:"page"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	page, err := d.posts.List(ctx, in.Page)
	if err != nil {
		return nil, err
	}

	posts := make([]PostResponse, 0, len(page.Posts))
	for _, post := range page.Posts {
		posts = append(posts, NewPostResponse(post))
	}
	return PostPageResponse{Posts: posts, TotalPosts: page.TotalPosts}, nil
}

func (d *Dispatcher) getPost(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		PostID string `json:"postId"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	postID, err := parsePostID(in.PostID)
	if err != nil {
		return nil, err
	}

	post, err := d.posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	return NewPostResponse(post), nil
}

func (d *Dispatcher) updatePost(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		PostID   string `json:"postId"`
		Title    string `json:"title"`
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	postID, err := parsePostID(in.PostID)
	if err != nil {
		return nil, err
	}

	post, err := d.posts.Update(ctx, postID, in.Title, in.Content, in.ImageURL)
	if err != nil {
		return nil, err
	}
	return NewPostResponse(post), nil
}

func (d *Dispatcher) deletePost(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		PostID string `json:"postId"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	postID, err := parsePostID(in.PostID)
	if err != nil {
		return nil, err
	}

	result, err := d.posts.Delete(ctx, postID)
	if err != nil {
		return nil, err
	}
	return DeleteResponse{IsDeleted: result.IsDeleted}, nil
}

func (d *Dispatcher) currentUser(ctx context.Context, _ json.RawMessage) (any, error) {
	user, err := d.users.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return NewUserResponse(user), nil
}

func (d *Dispatcher) updateStatus(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Status string `json:"status"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	user, err := d.users.UpdateStatus(ctx, in.Status)
	if err != nil {
		return nil, err
	}
	return NewUserResponse(user), nil
}
