package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/simfut/league-api/internal/core/domain"
)

const collectionTeams = "teams"

type TeamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{coll: db.Collection(collectionTeams)}
}

type teamDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	City      string             `bson:"city,omitempty"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (d teamDoc) toDomain() domain.Team {
	return domain.Team{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		City:      d.City,
		CreatedAt: unixToTime(d.CreatedAt),
		UpdatedAt: unixToTime(d.UpdatedAt),
	}
}

func (r *TeamRepository) FindAll(ctx context.Context) ([]domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find teams: %w", err)
	}
	defer cur.Close(ctx)

	teams := []domain.Team{}
	for cur.Next(ctx) {
		var doc teamDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode team: %w", err)
		}
		teams = append(teams, doc.toDomain())
	}
	return teams, cur.Err()
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*domain.Team, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTeamNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc teamDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("find team: %w", err)
	}
	team := doc.toDomain()
	return &team, nil
}

func (r *TeamRepository) Insert(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := teamDoc{
		Name:      team.Name,
		City:      team.City,
		CreatedAt: team.CreatedAt.Unix(),
		UpdatedAt: team.UpdatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	created := *team
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) error {
	oid, err := primitive.ObjectIDFromHex(team.ID)
	if err != nil {
		return domain.ErrTeamNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":       team.Name,
		"city":       team.City,
		"updated_at": team.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTeamNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}
