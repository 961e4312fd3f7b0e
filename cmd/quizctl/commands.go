package main

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/state"
	"github.com/supchaser/quiz_client/internal/viewmodel"
)

type command func(ctx context.Context, d *deps, args []string) error

var commands = map[string]command{
	"areas":     runAreas,
	"topics":    runTopics,
	"questions": runQuestions,
	"topic":     runCreateTopic,
	"question":  runQuestion,
	"save":      runSaveQuestion,
	"upload":    runUpload,
	"courses":   runCourses,
	"course":    runCreateCourse,
	"enable":    runEnableCourse,
	"answer":    runAnswer,
	"result":    runResult,
	"results":   runResults,
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func requirePositive(values map[string]int64) error {
	for name, v := range values {
		if v <= 0 {
			return errors.New("-" + name + " is required")
		}
	}
	return nil
}

func runAreas(ctx context.Context, d *deps, _ []string) error {
	bank := viewmodel.NewQuestionBank(ctx, d.api)
	defer bank.Close()

	bank.LoadAreas().Wait()
	return settled(bank.Areas().Get())
}

func runTopics(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("topics")
	area := fs.Int64("area", 0, "area id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive(map[string]int64{"area": *area}); err != nil {
		return err
	}

	bank := viewmodel.NewQuestionBank(ctx, d.api)
	defer bank.Close()

	bank.LoadTopics(*area).Wait()
	return settled(bank.Topics().Get())
}

func runQuestions(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("questions")
	area := fs.Int64("area", 0, "area id")
	topic := fs.Int64("topic", 0, "topic id")
	query := fs.String("q", "", "case-insensitive text filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bank := viewmodel.NewQuestionBank(ctx, d.api)
	defer bank.Close()

	bank.SetQuery(*query)
	bank.LoadQuestions(models.QuestionFilter{AreaID: *area, TopicID: *topic}).Wait()

	s := bank.Questions().Get()
	if !s.IsSuccess() {
		return settled(s)
	}
	return printJSON(bank.Filtered().Get())
}

func runCreateTopic(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("topic")
	area := fs.Int64("area", 0, "area id")
	name := fs.String("name", "", "topic name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive(map[string]int64{"area": *area}); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("-name is required")
	}

	bank := viewmodel.NewQuestionBank(ctx, d.api)
	defer bank.Close()

	bank.CreateTopic(models.CreateTopicRequest{AreaID: *area, Name: *name}).Wait()
	return settled(bank.TopicCreation().Get())
}

func runQuestion(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("question")
	id := fs.Int64("id", 0, "question id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive(map[string]int64{"id": *id}); err != nil {
		return err
	}

	editor := viewmodel.NewQuestionEditor(ctx, d.api)
	defer editor.Close()

	editor.Load(*id).Wait()
	return settled(editor.Question().Get())
}

// runSaveQuestion creates the first question of a batch file, or replaces
// question -id with it.
func runSaveQuestion(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("save")
	file := fs.String("file", "", "question description (batch JSON with one question)")
	id := fs.Int64("id", 0, "question to replace")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-file is required")
	}

	items, err := readBatchFile(*file)
	if err != nil {
		return err
	}
	if len(items) != 1 {
		return errors.New("the file must describe exactly one question")
	}

	editor := viewmodel.NewQuestionEditor(ctx, d.api)
	defer editor.Close()

	if *id > 0 {
		editor.Edit(*id, items[0]).Wait()
	} else {
		editor.Create(items[0]).Wait()
	}
	return settled(editor.Save().Get())
}

func runUpload(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("upload")
	file := fs.String("file", "", "batch description (JSON)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-file is required")
	}

	items, err := readBatchFile(*file)
	if err != nil {
		return err
	}

	batch := viewmodel.NewBatchUpload(ctx, d.api, d.poller, d.notifier)
	defer batch.Close()

	accepted := false
	unsubscribe := batch.State().Subscribe(func(s state.RequestState[models.BatchResult]) {
		if s.IsAccepted() {
			accepted = true
		}
	})
	batch.Submit(items).Wait()
	unsubscribe()

	s := batch.State().Get()
	if accepted || s.Value.Accepted {
		d.notifier.wait(ctx)
	}
	return settled(s)
}

func runCourses(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("courses")
	institution := fs.Int64("institution", 0, "institution id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive(map[string]int64{"institution": *institution}); err != nil {
		return err
	}

	inst := viewmodel.NewInstitution(ctx, d.api)
	defer inst.Close()

	inst.Load(*institution).Wait()
	return settled(inst.Data().Get())
}

func runCreateCourse(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("course")
	institution := fs.Int64("institution", 0, "institution id")
	name := fs.String("name", "", "course name")
	teacher := fs.String("teacher", "", "teacher id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive(map[string]int64{"institution": *institution}); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("-name is required")
	}

	inst := viewmodel.NewInstitution(ctx, d.api)
	defer inst.Close()

	inst.CreateCourse(models.CreateCourseRequest{
		InstitutionID: *institution,
		Name:          *name,
		TeacherID:     *teacher,
	}).Wait()
	return settled(inst.CourseSave().Get())
}

func runEnableCourse(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("enable")
	institution := fs.Int64("institution", 0, "institution id")
	course := fs.Int64("course", 0, "course id")
	enabled := fs.Bool("enabled", true, "enable or disable the course")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive(map[string]int64{"institution": *institution, "course": *course}); err != nil {
		return err
	}

	inst := viewmodel.NewInstitution(ctx, d.api)
	defer inst.Close()

	inst.SetCourseEnabled(*institution, *course, *enabled).Wait()
	if err := settled(inst.CourseSave().Get()); err != nil {
		return err
	}
	return printJSON(inst.EnabledCourses().Get())
}

func runAnswer(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("answer")
	quizID := fs.Int64("quiz", 0, "quiz id")
	question := fs.Int64("question", 0, "question id")
	option := fs.Int64("option", 0, "chosen option id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive(map[string]int64{"question": *question, "option": *option}); err != nil {
		return err
	}

	quiz := viewmodel.NewQuiz(ctx, d.api, d.identity)
	defer quiz.Close()

	quiz.SubmitAnswer(models.QuizAnswer{QuizID: *quizID, QuestionID: *question, OptionID: *option}).Wait()
	return settled(quiz.Answer().Get())
}

func runResult(ctx context.Context, d *deps, args []string) error {
	fs := newFlagSet("result")
	quizID := fs.Int64("quiz", 0, "quiz id")
	correct := fs.Int("correct", 0, "correct answers")
	total := fs.Int("total", 0, "questions answered")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *total <= 0 || *correct < 0 || *correct > *total {
		return errors.New("-correct must be between 0 and a positive -total")
	}

	quiz := viewmodel.NewQuiz(ctx, d.api, d.identity)
	defer quiz.Close()

	quiz.SubmitResult(models.QuizResult{QuizID: *quizID, Correct: *correct, Total: *total}).Wait()
	return settled(quiz.Result().Get())
}

func runResults(ctx context.Context, d *deps, _ []string) error {
	quiz := viewmodel.NewQuiz(ctx, d.api, d.identity)
	defer quiz.Close()

	quiz.LoadResults().Wait()
	return settled(quiz.Results().Get())
}
