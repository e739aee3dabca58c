// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tutorloop/tutorloop/ent/answerevent"
	"github.com/tutorloop/tutorloop/ent/knowledgeedge"
	"github.com/tutorloop/tutorloop/ent/knowledgenode"
	"github.com/tutorloop/tutorloop/ent/llmrequestevent"
	"github.com/tutorloop/tutorloop/ent/masteryrecord"
	"github.com/tutorloop/tutorloop/ent/question"
	"github.com/tutorloop/tutorloop/ent/schema"
	"github.com/tutorloop/tutorloop/ent/wronganswerrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescEventID is the schema descriptor for event_id field.
	answereventDescEventID := answereventFields[0].Descriptor()
	// answerevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	answerevent.EventIDValidator = answereventDescEventID.Validators[0].(func(string) error)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[1].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	answereventDescTimeSpentMs := answereventFields[6].Descriptor()
	// answerevent.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	answerevent.DefaultTimeSpentMs = answereventDescTimeSpentMs.Default.(int)
	// answereventDescConfidence is the schema descriptor for confidence field.
	answereventDescConfidence := answereventFields[7].Descriptor()
	// answerevent.DefaultConfidence holds the default value on creation for the confidence field.
	answerevent.DefaultConfidence = answereventDescConfidence.Default.(float64)
	knowledgeedgeFields := schema.KnowledgeEdge{}.Fields()
	_ = knowledgeedgeFields
	// knowledgeedgeDescSourceID is the schema descriptor for source_id field.
	knowledgeedgeDescSourceID := knowledgeedgeFields[0].Descriptor()
	// knowledgeedge.SourceIDValidator is a validator for the "source_id" field. It is called by the builders before save.
	knowledgeedge.SourceIDValidator = knowledgeedgeDescSourceID.Validators[0].(func(string) error)
	// knowledgeedgeDescTargetID is the schema descriptor for target_id field.
	knowledgeedgeDescTargetID := knowledgeedgeFields[1].Descriptor()
	// knowledgeedge.TargetIDValidator is a validator for the "target_id" field. It is called by the builders before save.
	knowledgeedge.TargetIDValidator = knowledgeedgeDescTargetID.Validators[0].(func(string) error)
	knowledgenodeFields := schema.KnowledgeNode{}.Fields()
	_ = knowledgenodeFields
	// knowledgenodeDescNodeID is the schema descriptor for node_id field.
	knowledgenodeDescNodeID := knowledgenodeFields[0].Descriptor()
	// knowledgenode.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	knowledgenode.NodeIDValidator = knowledgenodeDescNodeID.Validators[0].(func(string) error)
	// knowledgenodeDescName is the schema descriptor for name field.
	knowledgenodeDescName := knowledgenodeFields[1].Descriptor()
	// knowledgenode.NameValidator is a validator for the "name" field. It is called by the builders before save.
	knowledgenode.NameValidator = knowledgenodeDescName.Validators[0].(func(string) error)
	// knowledgenodeDescDifficulty is the schema descriptor for difficulty field.
	knowledgenodeDescDifficulty := knowledgenodeFields[2].Descriptor()
	// knowledgenode.DefaultDifficulty holds the default value on creation for the difficulty field.
	knowledgenode.DefaultDifficulty = knowledgenodeDescDifficulty.Default.(float64)
	// knowledgenodeDescLevel is the schema descriptor for level field.
	knowledgenodeDescLevel := knowledgenodeFields[3].Descriptor()
	// knowledgenode.DefaultLevel holds the default value on creation for the level field.
	knowledgenode.DefaultLevel = knowledgenodeDescLevel.Default.(int)
	// knowledgenodeDescPosition is the schema descriptor for position field.
	knowledgenodeDescPosition := knowledgenodeFields[6].Descriptor()
	// knowledgenode.DefaultPosition holds the default value on creation for the position field.
	knowledgenode.DefaultPosition = knowledgenodeDescPosition.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescUserID is the schema descriptor for user_id field.
	masteryrecordDescUserID := masteryrecordFields[0].Descriptor()
	// masteryrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryrecord.UserIDValidator = masteryrecordDescUserID.Validators[0].(func(string) error)
	// masteryrecordDescNodeID is the schema descriptor for node_id field.
	masteryrecordDescNodeID := masteryrecordFields[1].Descriptor()
	// masteryrecord.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	masteryrecord.NodeIDValidator = masteryrecordDescNodeID.Validators[0].(func(string) error)
	// masteryrecordDescScore is the schema descriptor for score field.
	masteryrecordDescScore := masteryrecordFields[2].Descriptor()
	// masteryrecord.DefaultScore holds the default value on creation for the score field.
	masteryrecord.DefaultScore = masteryrecordDescScore.Default.(float64)
	// masteryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	masteryrecordDescUpdatedAt := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masteryrecord.DefaultUpdatedAt = masteryrecordDescUpdatedAt.Default.(func() time.Time)
	// masteryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masteryrecord.UpdateDefaultUpdatedAt = masteryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionID is the schema descriptor for question_id field.
	questionDescQuestionID := questionFields[0].Descriptor()
	// question.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	question.QuestionIDValidator = questionDescQuestionID.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[1].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[2].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[3].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(float64)
	wronganswerrecordFields := schema.WrongAnswerRecord{}.Fields()
	_ = wronganswerrecordFields
	// wronganswerrecordDescUserID is the schema descriptor for user_id field.
	wronganswerrecordDescUserID := wronganswerrecordFields[0].Descriptor()
	// wronganswerrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	wronganswerrecord.UserIDValidator = wronganswerrecordDescUserID.Validators[0].(func(string) error)
	// wronganswerrecordDescQuestionID is the schema descriptor for question_id field.
	wronganswerrecordDescQuestionID := wronganswerrecordFields[1].Descriptor()
	// wronganswerrecord.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	wronganswerrecord.QuestionIDValidator = wronganswerrecordDescQuestionID.Validators[0].(func(string) error)
	// wronganswerrecordDescRepeatCount is the schema descriptor for repeat_count field.
	wronganswerrecordDescRepeatCount := wronganswerrecordFields[2].Descriptor()
	// wronganswerrecord.DefaultRepeatCount holds the default value on creation for the repeat_count field.
	wronganswerrecord.DefaultRepeatCount = wronganswerrecordDescRepeatCount.Default.(int)
	// wronganswerrecordDescLastWrongAt is the schema descriptor for last_wrong_at field.
	wronganswerrecordDescLastWrongAt := wronganswerrecordFields[3].Descriptor()
	// wronganswerrecord.DefaultLastWrongAt holds the default value on creation for the last_wrong_at field.
	wronganswerrecord.DefaultLastWrongAt = wronganswerrecordDescLastWrongAt.Default.(func() time.Time)
}
