package clients

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/feedstorehq/feedstore-backend/pkg/db/models"
	pkgerrors "github.com/feedstorehq/feedstore-backend/pkg/errors"
)

type stubClientsRepo struct {
	client         *models.Client
	created        *models.Client
	updated        *models.Client
	deleteAffected int64
}

func (s *stubClientsRepo) WithTx(tx *gorm.DB) Repository {
	return s
}

func (s *stubClientsRepo) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	s.created = client
	return client, nil
}

func (s *stubClientsRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	if s.client == nil || s.client.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.client, nil
}

func (s *stubClientsRepo) List(ctx context.Context) ([]models.Client, error) {
	if s.client == nil {
		return nil, nil
	}
	return []models.Client{*s.client}, nil
}

func (s *stubClientsRepo) Update(ctx context.Context, client *models.Client) (*models.Client, error) {
	s.updated = client
	return client, nil
}

func (s *stubClientsRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.deleteAffected, nil
}

type stubOrderCounter struct {
	count int64
	err   error
}

func (s *stubOrderCounter) CountOrdersByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	return s.count, s.err
}

func strPtr(v string) *string { return &v }

func TestServiceCreateClient(t *testing.T) {
	repo := &stubClientsRepo{}
	svc, err := NewService(repo, &stubOrderCounter{})
	require.NoError(t, err)

	client, err := svc.Create(context.Background(), CreateClientInput{
		Name:  "Fazenda Boa Vista",
		Phone: strPtr("+55 51 99999-0000"),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, client.ID)
	require.Equal(t, "Fazenda Boa Vista", client.Name)
	require.Same(t, client, repo.created)
}

func TestServiceCreateClientRequiresName(t *testing.T) {
	svc, err := NewService(&stubClientsRepo{}, &stubOrderCounter{})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateClientInput{})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceGetMissingClient(t *testing.T) {
	svc, err := NewService(&stubClientsRepo{}, &stubOrderCounter{})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New())
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestServiceUpdateClientPartial(t *testing.T) {
	id := uuid.New()
	repo := &stubClientsRepo{client: &models.Client{
		ID:    id,
		Name:  "Fazenda Boa Vista",
		Phone: strPtr("+55 51 99999-0000"),
	}}
	svc, err := NewService(repo, &stubOrderCounter{})
	require.NoError(t, err)

	client, err := svc.Update(context.Background(), id, UpdateClientInput{
		Name: strPtr("Fazenda Boa Vista Ltda"),
	})
	require.NoError(t, err)
	require.Equal(t, "Fazenda Boa Vista Ltda", client.Name)
	require.Equal(t, "+55 51 99999-0000", *client.Phone)
	require.NotNil(t, repo.updated)
}

func TestServiceDeleteClientWithOrdersConflicts(t *testing.T) {
	id := uuid.New()
	repo := &stubClientsRepo{client: &models.Client{ID: id, Name: "Fazenda Boa Vista"}}
	svc, err := NewService(repo, &stubOrderCounter{count: 3})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), id)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeConflict, appErr.Code())
}

func TestServiceDeleteClient(t *testing.T) {
	id := uuid.New()
	repo := &stubClientsRepo{
		client:         &models.Client{ID: id, Name: "Fazenda Boa Vista"},
		deleteAffected: 1,
	}
	svc, err := NewService(repo, &stubOrderCounter{})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), id))

	repo.deleteAffected = 0
	err = svc.Delete(context.Background(), uuid.New())
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
