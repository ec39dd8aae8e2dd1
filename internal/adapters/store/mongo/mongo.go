// Package mongo implements ports.ListRepository on MongoDB. Each list is one
// document holding its todos in an embedded array and its own todo sequence
// (next_todo_id). List ids come from a counters collection.
package mongo

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ListRepository = (*Store)(nil)

const listCounterID = "lists"

type listDoc struct {
	ID         int64     `bson:"_id"`
	Name       string    `bson:"name"`
	CreatedAt  time.Time `bson:"creation_date"`
	UpdatedAt  time.Time `bson:"last_update_date"`
	NextTodoID int64     `bson:"next_todo_id"`
	Todos      []todoDoc `bson:"todos"`
}

type todoDoc struct {
	ID          int64      `bson:"id"`
	Description string     `bson:"description"`
	State       string     `bson:"state"`
	DueDate     *time.Time `bson:"due_date,omitempty"`
	CreatedAt   time.Time  `bson:"creation_date"`
	UpdatedAt   time.Time  `bson:"last_update_date"`
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// Store is a MongoDB-backed list repository.
type Store struct {
	client   *mongo.Client
	lists    *mongo.Collection
	counters *mongo.Collection
}

// Open connects to the deployment at cfg.URI and verifies it with a ping.
func Open(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}
	return New(client, cfg), nil
}

// New wraps an already connected client.
func New(client *mongo.Client, cfg config.MongoConfig) *Store {
	db := client.Database(cfg.Database)
	return &Store{
		client:   client,
		lists:    db.Collection(cfg.ListsCollection),
		counters: db.Collection(cfg.CountersCollection),
	}
}

// Drop removes both collections. Used to clean up test databases.
func (s *Store) Drop(ctx context.Context) error {
	return errors.Join(s.lists.Drop(ctx), s.counters.Drop(ctx))
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return config.DriverMongo }

// HealthCheck pings the primary.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) CreateList(ctx context.Context, name string, now time.Time) (*list.List, error) {
	var counter counterDoc
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": listCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return nil, fmt.Errorf("allocating list id: %w", err)
	}

	doc := listDoc{
		ID:         counter.Seq,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
		NextTodoID: 1,
		Todos:      []todoDoc{},
	}
	if _, err := s.lists.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("inserting list %d: %w", doc.ID, err)
	}

	return doc.toList(), nil
}

func (s *Store) FindList(ctx context.Context, listID int64) (*list.List, error) {
	var doc listDoc
	err := s.lists.FindOne(ctx, bson.M{"_id": listID},
		options.FindOne().SetProjection(bson.M{"todos": 0}),
	).Decode(&doc)
	if err != nil {
		return nil, notFound(err, domain.ErrListNotFound)
	}
	return doc.toList(), nil
}

// DeleteList only matches a list whose todos array is empty, so a todo
// appended after DeleteTodos keeps the document alive.
func (s *Store) DeleteList(ctx context.Context, listID int64) error {
	res, err := s.lists.DeleteOne(ctx, bson.M{"_id": listID, "todos.0": bson.M{"$exists": false}})
	if err != nil {
		return fmt.Errorf("deleting list %d: %w", listID, err)
	}
	if res.DeletedCount > 0 {
		return nil
	}

	n, err := s.lists.CountDocuments(ctx, bson.M{"_id": listID}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("checking list %d: %w", listID, err)
	}
	if n == 0 {
		return domain.ErrListNotFound
	}
	return ports.ErrListNotEmpty
}

// CreateTodo appends the todo and bumps next_todo_id in one pipeline update.
// Both $set expressions read the pre-update document, so the new todo gets
// the old sequence value.
func (s *Store) CreateTodo(ctx context.Context, listID int64, t todo.Todo) (*todo.Todo, error) {
	fields := fromTodo(t)
	entry := bson.M{
		"description":      fields.Description,
		"state":            fields.State,
		"creation_date":    fields.CreatedAt,
		"last_update_date": fields.UpdatedAt,
	}
	if fields.DueDate != nil {
		entry["due_date"] = *fields.DueDate
	}

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"todos": bson.M{"$concatArrays": bson.A{
				"$todos",
				bson.A{bson.M{"$mergeObjects": bson.A{
					bson.M{"id": "$next_todo_id"},
					bson.M{"$literal": entry},
				}}},
			}},
			"next_todo_id": bson.M{"$add": bson.A{"$next_todo_id", 1}},
		}}},
	}

	var doc listDoc
	err := s.lists.FindOneAndUpdate(ctx, bson.M{"_id": listID}, update,
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"next_todo_id": 1}),
	).Decode(&doc)
	if err != nil {
		return nil, notFound(err, domain.ErrListNotFound)
	}

	t.ID = doc.NextTodoID - 1
	t.ListID = listID
	return &t, nil
}

func (s *Store) FindTodo(ctx context.Context, listID, todoID int64) (*todo.Todo, error) {
	var doc listDoc
	err := s.lists.FindOne(ctx, bson.M{"_id": listID},
		options.FindOne().SetProjection(bson.M{"todos": bson.M{"$elemMatch": bson.M{"id": todoID}}}),
	).Decode(&doc)
	if err != nil {
		return nil, notFound(err, domain.ErrListNotFound)
	}
	if len(doc.Todos) == 0 {
		return nil, domain.ErrTodoNotFound
	}
	return doc.Todos[0].toTodo(listID), nil
}

func (s *Store) UpdateTodo(ctx context.Context, listID, todoID int64, patch todo.Patch) (*todo.Todo, error) {
	set := bson.M{}
	if v, ok := patch.Description.Get(); ok {
		set["todos.$.description"] = v
	}
	if v, ok := patch.State.Get(); ok {
		set["todos.$.state"] = string(v)
	}
	if v, ok := patch.DueDate.Get(); ok {
		set["todos.$.due_date"] = v
	}

	update := bson.M{"$max": bson.M{"todos.$.last_update_date": patch.UpdatedAt}}
	if len(set) > 0 {
		update["$set"] = set
	}
	if patch.DueDate.IsNull() {
		update["$unset"] = bson.M{"todos.$.due_date": ""}
	}

	var doc listDoc
	err := s.lists.FindOneAndUpdate(ctx,
		bson.M{"_id": listID, "todos.id": todoID},
		update,
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"todos": bson.M{"$elemMatch": bson.M{"id": todoID}}}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, s.missing(ctx, listID)
	}
	if err != nil {
		return nil, fmt.Errorf("updating todo %d of list %d: %w", todoID, listID, err)
	}
	if len(doc.Todos) == 0 {
		return nil, domain.ErrTodoNotFound
	}
	return doc.Todos[0].toTodo(listID), nil
}

func (s *Store) DeleteTodo(ctx context.Context, listID, todoID int64) error {
	res, err := s.lists.UpdateOne(ctx,
		bson.M{"_id": listID, "todos.id": todoID},
		bson.M{"$pull": bson.M{"todos": bson.M{"id": todoID}}},
	)
	if err != nil {
		return fmt.Errorf("deleting todo %d of list %d: %w", todoID, listID, err)
	}
	if res.MatchedCount == 0 {
		return s.missing(ctx, listID)
	}
	return nil
}

// GetTodos sorts and pages inside the database.
func (s *Store) GetTodos(ctx context.Context, listID int64, q todo.Query) ([]todo.Todo, error) {
	q = q.Normalize()

	dir := -1
	if q.Direction == todo.Ascending {
		dir = 1
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": listID}}},
		{{Key: "$unwind", Value: "$todos"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$todos"}}},
		{{Key: "$sort", Value: bson.D{{Key: string(q.OrderBy), Value: dir}, {Key: "id", Value: 1}}}},
	}
	if q.Index > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: int64(q.Index)}})
	}
	if q.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(q.Limit)}})
	}

	cur, err := s.lists.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("querying todos of list %d: %w", listID, err)
	}
	var docs []todoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("reading todos of list %d: %w", listID, err)
	}

	if len(docs) == 0 {
		// An empty page is only valid for an existing list.
		if _, err := s.FindList(ctx, listID); err != nil {
			return nil, err
		}
	}
	return toTodos(listID, docs), nil
}

func (s *Store) ListTodos(ctx context.Context, listID int64) ([]todo.Todo, error) {
	var doc listDoc
	err := s.lists.FindOne(ctx, bson.M{"_id": listID},
		options.FindOne().SetProjection(bson.M{"todos": 1}),
	).Decode(&doc)
	if err != nil {
		return nil, notFound(err, domain.ErrListNotFound)
	}

	out := toTodos(listID, doc.Todos)
	slices.SortFunc(out, func(a, b todo.Todo) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (s *Store) DeleteTodos(ctx context.Context, listID int64) (int, error) {
	var doc listDoc
	err := s.lists.FindOneAndUpdate(ctx,
		bson.M{"_id": listID},
		bson.M{"$set": bson.M{"todos": bson.A{}}},
		options.FindOneAndUpdate().
			SetReturnDocument(options.Before).
			SetProjection(bson.M{"todos.id": 1}),
	).Decode(&doc)
	if err != nil {
		return 0, notFound(err, domain.ErrListNotFound)
	}
	return len(doc.Todos), nil
}

func (s *Store) RestoreTodos(ctx context.Context, listID int64, todos []todo.Todo) error {
	docs := make(bson.A, 0, len(todos))
	for _, t := range todos {
		docs = append(docs, fromTodo(t))
	}

	res, err := s.lists.UpdateOne(ctx,
		bson.M{"_id": listID},
		bson.M{"$push": bson.M{"todos": bson.M{"$each": docs}}},
	)
	if err != nil {
		return fmt.Errorf("restoring todos of list %d: %w", listID, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrListNotFound
	}
	return nil
}

// missing resolves a failed todo match into the right not-found error.
func (s *Store) missing(ctx context.Context, listID int64) error {
	n, err := s.lists.CountDocuments(ctx, bson.M{"_id": listID}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("checking list %d: %w", listID, err)
	}
	if n == 0 {
		return domain.ErrListNotFound
	}
	return domain.ErrTodoNotFound
}

func notFound(err, kind error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return kind
	}
	return err
}

func (d listDoc) toList() *list.List {
	return &list.List{ID: d.ID, Name: d.Name, CreatedAt: d.CreatedAt.UTC(), UpdatedAt: d.UpdatedAt.UTC()}
}

func (d todoDoc) toTodo(listID int64) *todo.Todo {
	t := &todo.Todo{
		ID:          d.ID,
		ListID:      listID,
		Description: d.Description,
		State:       todo.State(d.State),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if d.DueDate != nil {
		due := d.DueDate.UTC()
		t.DueDate = &due
	}
	return t
}

func fromTodo(t todo.Todo) todoDoc {
	return todoDoc{
		ID:          t.ID,
		Description: t.Description,
		State:       string(t.State),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTodos(listID int64, docs []todoDoc) []todo.Todo {
	out := make([]todo.Todo, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.toTodo(listID))
	}
	return out
}
