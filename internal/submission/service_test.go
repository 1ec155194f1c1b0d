package submission_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/intake/internal/profile"
	"github.com/MrJamesThe3rd/intake/internal/submission"
)

func TestService_Create(t *testing.T) {
	type args struct {
		payload profile.Payload
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(r *submission.MockRepository, n *submission.MockNotifier)
		wantErr   error
	}

	valid := profile.Payload{Profile: profile.Profile{BusinessName: "Acme Roofing", YearsOfExperience: new(12)}}

	tests := []testCase{
		{
			name: "Success",
			args: args{payload: valid},
			setupMock: func(r *submission.MockRepository, n *submission.MockNotifier) {
				gomock.InOrder(
					r.EXPECT().
						CreateSubmission(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, s *submission.Submission) error {
							s.ID = uuid.New()
							s.CreatedAt = time.Now()
							return nil
						}),
					n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "NotifyFailureIsNotReturned",
			args: args{payload: valid},
			setupMock: func(r *submission.MockRepository, n *submission.MockNotifier) {
				r.EXPECT().
					CreateSubmission(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *submission.Submission) error {
						s.ID = uuid.New()
						return nil
					})
				n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
		},
		{
			name:    "MissingYears",
			args:    args{payload: profile.Payload{Profile: profile.Profile{BusinessName: "Acme"}}},
			wantErr: profile.ErrInvalid,
		},
		{
			name:    "YearsOutOfRange",
			args:    args{payload: profile.Payload{Profile: profile.Profile{YearsOfExperience: new(51)}}},
			wantErr: profile.ErrInvalid,
		},
		{
			name: "RepoError",
			args: args{payload: valid},
			setupMock: func(r *submission.MockRepository, _ *submission.MockNotifier) {
				r.EXPECT().
					CreateSubmission(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := submission.NewMockRepository(ctrl)
			notifier := submission.NewMockNotifier(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, notifier)
			}

			svc := submission.NewService(repo, notifier)
			got, err := svc.Create(context.Background(), tt.args.payload)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)

				if errors.Is(tt.wantErr, profile.ErrInvalid) {
					assert.ErrorIs(t, err, profile.ErrInvalid)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.NotNil(t, got.Payload.Services)
			assert.NotNil(t, got.Payload.InstallationSteps)
		})
	}
}

func TestService_Create_WithoutNotifier(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := submission.NewMockRepository(ctrl)
	repo.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(nil)

	svc := submission.NewService(repo, nil)
	got, err := svc.Create(context.Background(), profile.Payload{Profile: profile.Profile{YearsOfExperience: new(0)}})

	require.NoError(t, err)
	assert.Equal(t, 0, *got.Payload.YearsOfExperience)
}

func TestService_Get(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *submission.MockRepository, id uuid.UUID)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Found",
			setupMock: func(m *submission.MockRepository, id uuid.UUID) {
				m.EXPECT().GetSubmission(gomock.Any(), id).Return(&submission.Submission{ID: id}, nil)
			},
		},
		{
			name: "NotFound",
			setupMock: func(m *submission.MockRepository, id uuid.UUID) {
				m.EXPECT().GetSubmission(gomock.Any(), id).Return(nil, submission.ErrNotFound)
			},
			wantErr: submission.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := submission.NewMockRepository(ctrl)

			id := uuid.New()
			tt.setupMock(repo, id)

			got, err := submission.NewService(repo, nil).Get(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := submission.NewMockRepository(ctrl)

	repo.EXPECT().
		ListSubmissions(gomock.Any()).
		Return([]*submission.Submission{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	got, err := submission.NewService(repo, nil).List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
