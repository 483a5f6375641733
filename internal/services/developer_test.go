package services

import (
	"context"
	"errors"
	"testing"

	"eventsmanager/internal/domain"
	"eventsmanager/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDeveloper(email string) domain.DeveloperInput {
	return domain.DeveloperInput{Email: email, Name: "Ada", CurrentCity: "London", PhoneNumber: "+44 555"}
}

func TestDeveloperService_CreateDeveloper(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		seed     []domain.DeveloperInput
		input    domain.DeveloperInput
		wantErr  bool
		errAs    func(error) bool
		errMsg   string
		checkOut func(t *testing.T, out *domain.DeveloperView)
	}{
		{
			name:  "success",
			input: validDeveloper("ada@example.com"),
			checkOut: func(t *testing.T, out *domain.DeveloperView) {
				assert.Equal(t, &domain.DeveloperView{
					Email: "ada@example.com", Name: "Ada", CurrentCity: "London", PhoneNumber: "+44 555",
				}, out)
			},
		},
		{
			name:    "invalid email",
			input:   validDeveloper("not-an-email"),
			wantErr: true,
			errAs: func(err error) bool {
				var ve *domain.ValidationError
				return errors.As(err, &ve) && len(ve.Fields) == 1 && ve.Fields[0].Field == "email"
			},
		},
		{
			name:    "missing fields",
			input:   domain.DeveloperInput{},
			wantErr: true,
			errAs: func(err error) bool {
				var ve *domain.ValidationError
				return errors.As(err, &ve) && len(ve.Fields) == 4
			},
		},
		{
			name:    "duplicate email",
			seed:    []domain.DeveloperInput{validDeveloper("ada@example.com")},
			input:   validDeveloper("ada@example.com"),
			wantErr: true,
			errAs: func(err error) bool {
				var ce *domain.ConflictError
				return errors.As(err, &ce)
			},
			errMsg: "Developer with email ada@example.com already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDeveloperService(memory.NewStore(), testLogger)
			for _, in := range tt.seed {
				_, err := svc.CreateDeveloper(ctx, in)
				require.NoError(t, err)
			}

			out, err := svc.CreateDeveloper(ctx, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, tt.errAs(err), "unexpected error type: %T", err)
				if tt.errMsg != "" {
					assert.Equal(t, tt.errMsg, err.Error())
				}
				return
			}
			require.NoError(t, err)
			tt.checkOut(t, out)
		})
	}
}

func TestDeveloperService_CreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewDeveloperService(memory.NewStore(), testLogger)

	created, err := svc.CreateDeveloper(ctx, validDeveloper("grace@example.com"))
	require.NoError(t, err)

	got, err := svc.GetDeveloperByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestDeveloperService_GetDeveloperByEmail_NotFound(t *testing.T) {
	svc := NewDeveloperService(memory.NewStore(), testLogger)

	_, err := svc.GetDeveloperByEmail(context.Background(), "ghost@example.com")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Contains(t, nf.Message, "ghost@example.com")
}

func TestDeveloperService_GetDevelopers(t *testing.T) {
	ctx := context.Background()
	svc := NewDeveloperService(memory.NewStore(), testLogger)

	empty, err := svc.GetDevelopers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, email := range []string{"b@example.com", "a@example.com"} {
		_, err := svc.CreateDeveloper(ctx, validDeveloper(email))
		require.NoError(t, err)
	}
	all, err := svc.GetDevelopers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a@example.com", all[0].Email)
	assert.Equal(t, "b@example.com", all[1].Email)
}

func TestDeveloperService_StoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewDeveloperService(failingStore{err: boom}, testLogger)

	_, err := svc.GetDevelopers(context.Background())
	require.ErrorIs(t, err, boom)

	_, err = svc.GetDeveloperByEmail(context.Background(), "a@example.com")
	require.ErrorIs(t, err, boom)
	var nf *domain.NotFoundError
	assert.False(t, errors.As(err, &nf))
}
