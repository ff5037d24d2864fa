package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/isandoval/staffdesk-be/internal/models"
)

// EmployeeServiceProvider defines the interface for employee record services.
type EmployeeServiceProvider interface {
	List(ctx context.Context) ([]models.Employee, error)
	Search(ctx context.Context, department, position string) ([]models.Employee, error)
	Create(ctx context.Context, emp models.Employee) (models.Employee, error)
	Get(ctx context.Context, id bson.ObjectID) (models.Employee, error)
	Update(ctx context.Context, id bson.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// EmployeeService provides business logic for employee records.
type EmployeeService struct {
	employees *mongo.Collection
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(db *mongo.Database) *EmployeeService {
	return &EmployeeService{employees: db.Collection("employees")}
}

// newestFirst orders results by creation time, newest first.
var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

// List returns all employee records, newest-created first.
func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.find(ctx, bson.M{})
}

// Search returns employees whose department and/or position contain the
// given terms, case-insensitively. Empty terms are ignored; with no active
// criteria Search behaves exactly like List.
func (s *EmployeeService) Search(ctx context.Context, department, position string) ([]models.Employee, error) {
	return s.find(ctx, searchFilter(department, position))
}

// searchFilter builds the query document for Search. Each non-empty term
// becomes a case-insensitive substring match on its field.
func searchFilter(department, position string) bson.M {
	filter := bson.M{}
	if d := strings.TrimSpace(department); d != "" {
		filter["department"] = bson.M{"$regex": d, "$options": "i"}
	}
	if p := strings.TrimSpace(position); p != "" {
		filter["position"] = bson.M{"$regex": p, "$options": "i"}
	}
	return filter
}

func (s *EmployeeService) find(ctx context.Context, filter bson.M) ([]models.Employee, error) {
	cursor, err := s.employees.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	employees := []models.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employees, nil
}

// Create persists a new employee record.
func (s *EmployeeService) Create(ctx context.Context, emp models.Employee) (models.Employee, error) {
	now := time.Now().UTC()
	emp.ID = bson.NewObjectID()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	if _, err := s.employees.InsertOne(ctx, emp); err != nil {
		return models.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}
	return emp, nil
}

// Get retrieves a single employee record by its id.
func (s *EmployeeService) Get(ctx context.Context, id bson.ObjectID) (models.Employee, error) {
	var emp models.Employee
	err := s.employees.FindOne(ctx, bson.M{"_id": id}).Decode(&emp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return emp, nil
}

// Update merges the supplied fields into an existing record. Fields not
// present in the update document are left untouched.
func (s *EmployeeService) Update(ctx context.Context, id bson.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now().UTC()
	err := s.employees.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// Delete removes an employee record. Deleting an id that does not exist is
// not an error; the operation is idempotent.
func (s *EmployeeService) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := s.employees.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
