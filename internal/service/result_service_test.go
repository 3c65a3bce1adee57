package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// seedQuiz создает в хранилище викторину из двух вопросов по два варианта
// и возвращает ее вместе с картой правильных ответов.
func seedQuiz(t *testing.T, store *fakeStore, companyID uint) (*entity.Quiz, map[uint]uint) {
	t.Helper()

	quiz := &entity.Quiz{
		CompanyID:         companyID,
		Title:             "Техника безопасности",
		PassingFrequency:  7,
		NumberOfQuestions: 2,
		Questions: []entity.Question{
			{
				Text: "Вопрос 1",
				Answers: []entity.Answer{
					{Text: "верный", IsCorrect: true},
					{Text: "неверный"},
				},
			},
			{
				Text: "Вопрос 2",
				Answers: []entity.Answer{
					{Text: "неверный"},
					{Text: "верный", IsCorrect: true},
				},
			},
		},
	}
	quizRepo := &fakeQuizRepo{s: store}
	require.NoError(t, quizRepo.CreateWithQuestions(context.Background(), quiz))

	correct, err := quizRepo.GetCorrectAnswers(context.Background(), quiz.ID)
	require.NoError(t, err)
	require.Len(t, correct, 2)
	return quiz, correct
}

func newResultService(store *fakeStore) *ResultService {
	return NewResultService(
		&fakeResultRepo{s: store},
		&fakeQuizRepo{s: store},
		&fakeAnswerHistory{s: store},
	)
}

func TestScoreAttempt(t *testing.T) {
	correct := map[uint]uint{10: 101, 20: 202}

	tests := []struct {
		name    string
		answers []SubmittedAnswer
		want    int
	}{
		{
			name: "все ответы верные",
			answers: []SubmittedAnswer{
				{QuestionID: 10, AnswerID: 101},
				{QuestionID: 20, AnswerID: 202},
			},
			want: 2,
		},
		{
			name: "порядок ответов не влияет",
			answers: []SubmittedAnswer{
				{QuestionID: 20, AnswerID: 202},
				{QuestionID: 10, AnswerID: 101},
			},
			want: 2,
		},
		{
			name: "повторный верный ответ не засчитывается дважды",
			answers: []SubmittedAnswer{
				{QuestionID: 10, AnswerID: 101},
				{QuestionID: 10, AnswerID: 101},
			},
			want: 1,
		},
		{
			name: "ответ на чужой вопрос игнорируется",
			answers: []SubmittedAnswer{
				{QuestionID: 99, AnswerID: 101},
				{QuestionID: 10, AnswerID: 101},
			},
			want: 1,
		},
		{
			name: "неверный вариант не засчитывается",
			answers: []SubmittedAnswer{
				{QuestionID: 10, AnswerID: 999},
				{QuestionID: 20, AnswerID: 202},
			},
			want: 1,
		},
		{
			name:    "пустая попытка",
			answers: nil,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreAttempt(tt.answers, correct))
		})
	}
}

func TestScoreAttemptDoesNotMutateCorrectMap(t *testing.T) {
	correct := map[uint]uint{10: 101}
	scoreAttempt([]SubmittedAnswer{{QuestionID: 10, AnswerID: 101}}, correct)
	assert.Len(t, correct, 1)
}

func TestRecordAttemptAccumulatesGPA(t *testing.T) {
	store := newFakeStore()
	svc := newResultService(store)
	quiz, correct := seedQuiz(t, store, 1)
	ctx := context.Background()

	var allCorrect []SubmittedAnswer
	for questionID, answerID := range correct {
		allCorrect = append(allCorrect, SubmittedAnswer{QuestionID: questionID, AnswerID: answerID})
	}

	first, err := svc.RecordAttempt(ctx, 5, 1, quiz.ID, allCorrect)
	require.NoError(t, err)
	assert.Equal(t, 2, first.CorrectAnswers)
	assert.Equal(t, 2, first.NumberOfQuestions)
	assert.InDelta(t, 1.0, first.GPA, 1e-9)

	// Вторая попытка: один верный из двух. Накопительно 3 из 4.
	partial := allCorrect[:1]
	second, err := svc.RecordAttempt(ctx, 5, 1, quiz.ID, partial)
	require.NoError(t, err)
	assert.Equal(t, 1, second.CorrectAnswers)
	assert.InDelta(t, 0.75, second.GPA, 1e-9)

	general, err := svc.GetGeneralResult(ctx, 5, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, general.GPA, 1e-9)
}

func TestRecordAttemptSeparatesUsersAndCompanies(t *testing.T) {
	store := newFakeStore()
	svc := newResultService(store)
	quiz, correct := seedQuiz(t, store, 1)
	ctx := context.Background()

	var allCorrect []SubmittedAnswer
	for questionID, answerID := range correct {
		allCorrect = append(allCorrect, SubmittedAnswer{QuestionID: questionID, AnswerID: answerID})
	}

	_, err := svc.RecordAttempt(ctx, 5, 1, quiz.ID, allCorrect)
	require.NoError(t, err)

	_, err = svc.RecordAttempt(ctx, 6, 1, quiz.ID, nil)
	require.NoError(t, err)

	five, err := svc.GetGeneralResult(ctx, 5, 1)
	require.NoError(t, err)
	six, err := svc.GetGeneralResult(ctx, 6, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, five.GPA, 1e-9)
	assert.InDelta(t, 0.0, six.GPA, 1e-9)
}

func TestRecordAttemptRejectsForeignQuiz(t *testing.T) {
	store := newFakeStore()
	svc := newResultService(store)
	quiz, _ := seedQuiz(t, store, 1)

	_, err := svc.RecordAttempt(context.Background(), 5, 2, quiz.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation)
}

func TestRecordAttemptUnknownQuiz(t *testing.T) {
	store := newFakeStore()
	svc := newResultService(store)

	_, err := svc.RecordAttempt(context.Background(), 5, 1, 777, nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRecordAttemptWritesAnswerHistory(t *testing.T) {
	store := newFakeStore()
	svc := newResultService(store)
	quiz, correct := seedQuiz(t, store, 1)
	history := &fakeAnswerHistory{s: store}
	ctx := context.Background()

	var answers []SubmittedAnswer
	for questionID, answerID := range correct {
		answers = append(answers, SubmittedAnswer{QuestionID: questionID, AnswerID: answerID})
	}
	_, err := svc.RecordAttempt(ctx, 5, 1, quiz.ID, answers)
	require.NoError(t, err)

	for questionID, answerID := range correct {
		stored, err := history.Get(ctx, 5, questionID)
		require.NoError(t, err)
		assert.Equal(t, answerID, stored)
	}

	_, err = history.Get(ctx, 5, 9999)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestGetGeneralResultNotFound(t *testing.T) {
	store := newFakeStore()
	svc := newResultService(store)

	_, err := svc.GetGeneralResult(context.Background(), 5, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
