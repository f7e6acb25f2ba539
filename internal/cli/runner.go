package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/advent/internal/puzzle"
	"github.com/temirov/advent/internal/types"
)

const (
	errorReadInputFormat = "day %d input %s: %w"
	errorSolveFormat     = "day %d part %d: %w"

	logMessageSolved     = "solved"
	logMessageSkippedDay = "skipping day without input"
	logFieldDay          = "day"
	logFieldPart         = "part"
	logFieldInput        = "input"
	logFieldElapsed      = "elapsed"
)

const answerValuesSeparator = "\n"

// solveRequest names the parts of one day to solve against one input file.
type solveRequest struct {
	puzzle      puzzle.Puzzle
	partNumbers []int
	inputPath   string
}

// solve reads the input once and runs every requested part against it.
func solve(ctx context.Context, logger *zap.Logger, request solveRequest) ([]types.Answer, error) {
	contents, readError := os.ReadFile(request.inputPath)
	if readError != nil {
		return nil, fmt.Errorf(errorReadInputFormat, request.puzzle.Day, request.inputPath, readError)
	}
	answers := make([]types.Answer, 0, len(request.partNumbers))
	for _, partNumber := range request.partNumbers {
		if contextError := ctx.Err(); contextError != nil {
			return nil, contextError
		}
		part, partError := request.puzzle.Part(partNumber)
		if partError != nil {
			return nil, partError
		}
		started := time.Now()
		value, solveError := part(bytes.NewReader(contents))
		if solveError != nil {
			return nil, fmt.Errorf(errorSolveFormat, request.puzzle.Day, partNumber, solveError)
		}
		logger.Debug(logMessageSolved,
			zap.Int(logFieldDay, request.puzzle.Day),
			zap.Int(logFieldPart, partNumber),
			zap.String(logFieldInput, request.inputPath),
			zap.Duration(logFieldElapsed, time.Since(started)),
		)
		answers = append(answers, types.Answer{
			Day:   request.puzzle.Day,
			Part:  partNumber,
			Title: request.puzzle.Title,
			Input: request.inputPath,
			Value: value,
		})
	}
	return answers, nil
}

// solveAll runs every request concurrently with at most one worker per CPU.
// Answers keep the order of requests. A request whose input file does not
// exist is logged and skipped.
func solveAll(ctx context.Context, logger *zap.Logger, requests []solveRequest) ([]types.Answer, error) {
	group, groupContext := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	answersByRequest := make([][]types.Answer, len(requests))
	for requestIndex, request := range requests {
		group.Go(func() error {
			answers, solveError := solve(groupContext, logger, request)
			if errors.Is(solveError, fs.ErrNotExist) {
				logger.Warn(logMessageSkippedDay, zap.Int(logFieldDay, request.puzzle.Day), zap.String(logFieldInput, request.inputPath))
				return nil
			}
			if solveError != nil {
				return solveError
			}
			answersByRequest[requestIndex] = answers
			return nil
		})
	}
	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}
	var answers []types.Answer
	for _, requestAnswers := range answersByRequest {
		answers = append(answers, requestAnswers...)
	}
	return answers, nil
}

func answerValues(answers []types.Answer) string {
	values := make([]string, 0, len(answers))
	for _, answer := range answers {
		values = append(values, answer.Value)
	}
	return strings.Join(values, answerValuesSeparator)
}
