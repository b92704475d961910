package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/simfut/league-api/internal/core/domain"
)

const collectionMatches = "matches"

type MatchRepository struct {
	coll *mongo.Collection
}

func NewMatchRepository(db *mongo.Database) *MatchRepository {
	return &MatchRepository{coll: db.Collection(collectionMatches)}
}

type matchDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Date       int64              `bson:"date"`
	HomeTeamID string             `bson:"home_team_id"`
	AwayTeamID string             `bson:"away_team_id"`
	HomeGoals  int                `bson:"home_goals"`
	AwayGoals  int                `bson:"away_goals"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

func (d matchDoc) toDomain() domain.Match {
	return domain.Match{
		ID:         d.ID.Hex(),
		Date:       unixToTime(d.Date),
		HomeTeamID: d.HomeTeamID,
		AwayTeamID: d.AwayTeamID,
		HomeGoals:  d.HomeGoals,
		AwayGoals:  d.AwayGoals,
		CreatedAt:  unixToTime(d.CreatedAt),
		UpdatedAt:  unixToTime(d.UpdatedAt),
	}
}

func (r *MatchRepository) FindAll(ctx context.Context) ([]domain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find matches: %w", err)
	}
	defer cur.Close(ctx)

	matches := []domain.Match{}
	for cur.Next(ctx) {
		var doc matchDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode match: %w", err)
		}
		matches = append(matches, doc.toDomain())
	}
	return matches, cur.Err()
}

func (r *MatchRepository) FindByID(ctx context.Context, id string) (*domain.Match, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMatchNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc matchDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("find match: %w", err)
	}
	match := doc.toDomain()
	return &match, nil
}

func (r *MatchRepository) Insert(ctx context.Context, match *domain.Match) (*domain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := matchDoc{
		Date:       match.Date.Unix(),
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
		HomeGoals:  match.HomeGoals,
		AwayGoals:  match.AwayGoals,
		CreatedAt:  match.CreatedAt.Unix(),
		UpdatedAt:  match.UpdatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert match: %w", err)
	}

	created := *match
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MatchRepository) Update(ctx context.Context, match *domain.Match) error {
	oid, err := primitive.ObjectIDFromHex(match.ID)
	if err != nil {
		return domain.ErrMatchNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"date":         match.Date.Unix(),
		"home_team_id": match.HomeTeamID,
		"away_team_id": match.AwayTeamID,
		"home_goals":   match.HomeGoals,
		"away_goals":   match.AwayGoals,
		"updated_at":   match.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMatchNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

// EnsureIndexes creates lookup indexes for the match collection.
func (r *MatchRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "home_team_id", Value: 1}}},
		{Keys: bson.D{{Key: "away_team_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
