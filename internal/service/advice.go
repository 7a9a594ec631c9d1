package service

import (
	"fmt"
	"math"

	"github.com/vitalsync/backend/internal/models"
)

// Threshold constants for the insight and recommendation rule catalogs
const (
	lowSleepHours      = 6.0
	targetSleepHours   = 7.0
	overSleepHours     = 9.0
	lowStepsLevel      = 5000.0
	targetStepsLevel   = 7000.0
	lowMoodLevel       = 4.0
	supportMoodLevel   = 5.0
	highHeartRate      = 100.0
	lowHeartRate       = 55.0
	highStressLevel    = 7.0
	urgentStressLevel  = 8.0
	mildStressLevel    = 5.0
	trendNotable       = 20.0
	stressTrendNotable = 30.0
)

const insightBalanced = "Your health metrics look balanced. Keep maintaining good habits!"

// adviceRule evaluates one independent gate against the averages and trends,
// producing at most one message
type adviceRule func(a models.Averages, t models.Trends) (string, bool)

// insightRules is the fixed evaluation order of the insight catalog.
// Gates are independent: every matching rule fires.
var insightRules = []adviceRule{
	sleepInsight,
	stressSleepInsight,
	activityInsight,
	moodInsight,
	heartRateInsight,
	stressInsight,
}

// recommendationRules is the fixed evaluation order of the recommendation
// catalog, followed by two unconditional closing tips.
var recommendationRules = []adviceRule{
	sleepRecommendation,
	stressRecommendation,
	activityRecommendation,
	moodRecommendation,
	hydrationRecommendation,
	trainingBalanceRecommendation,
}

// GenerateInsights evaluates the insight catalog over the averages and
// trends. When no rule fires it returns the single balanced message.
func GenerateInsights(a models.Averages, t models.Trends) []string {
	insights := make([]string, 0, len(insightRules))
	for _, rule := range insightRules {
		if msg, ok := rule(a, t); ok {
			insights = append(insights, msg)
		}
	}

	if len(insights) == 0 {
		return []string{insightBalanced}
	}
	return insights
}

// GenerateRecommendations evaluates the recommendation catalog. The closing
// hydration and training tips always fire.
func GenerateRecommendations(a models.Averages, t models.Trends) []string {
	recommendations := make([]string, 0, len(recommendationRules))
	for _, rule := range recommendationRules {
		if msg, ok := rule(a, t); ok {
			recommendations = append(recommendations, msg)
		}
	}
	return recommendations
}

func sleepInsight(a models.Averages, _ models.Trends) (string, bool) {
	if a.SleepDuration == nil {
		return "", false
	}
	switch {
	case *a.SleepDuration < lowSleepHours:
		return "Your sleep duration is consistently below 6 hours, which may impact your health.", true
	case *a.SleepDuration > overSleepHours:
		return "You're sleeping more than average (9+ hours). Consider waking earlier if possible.", true
	}
	return "", false
}

func stressSleepInsight(a models.Averages, _ models.Trends) (string, bool) {
	if a.Stress != nil && a.SleepDuration != nil &&
		*a.Stress > highStressLevel && *a.SleepDuration < lowSleepHours {
		return "Stress spikes correlate with poor sleep. Try relaxation techniques before bed.", true
	}
	return "", false
}

func activityInsight(a models.Averages, t models.Trends) (string, bool) {
	if a.Steps == nil {
		return "", false
	}
	switch {
	case *a.Steps < lowStepsLevel:
		return "Physical activity is low. Aim for at least 7,000 steps per day.", true
	case t.Steps < -trendNotable:
		return fmt.Sprintf("Physical activity decreased by %.0f%% this week.", math.Abs(t.Steps)), true
	case t.Steps > trendNotable:
		return fmt.Sprintf("Great! Physical activity increased by %.0f%% this week!", t.Steps), true
	}
	return "", false
}

func moodInsight(a models.Averages, t models.Trends) (string, bool) {
	if a.Mood == nil {
		return "", false
	}
	switch {
	case *a.Mood < lowMoodLevel:
		return "Your mood scores have been low recently. Consider talking to someone or seeking support.", true
	case t.Mood > trendNotable:
		return "Your mood has improved significantly recently!", true
	case t.Mood < -trendNotable:
		return "Your mood has declined. Try activities that bring you joy.", true
	}
	return "", false
}

func heartRateInsight(a models.Averages, _ models.Trends) (string, bool) {
	if a.HeartRate == nil {
		return "", false
	}
	switch {
	case *a.HeartRate > highHeartRate:
		return "Your resting heart rate is elevated. Consider stress management techniques.", true
	case *a.HeartRate < lowHeartRate:
		return "Your resting heart rate is quite low. This is normal if you're athletic.", true
	}
	return "", false
}

func stressInsight(a models.Averages, t models.Trends) (string, bool) {
	if a.Stress == nil {
		return "", false
	}
	switch {
	case *a.Stress > urgentStressLevel:
		return "Stress levels are high. Prioritize relaxation and self-care.", true
	case t.Stress > stressTrendNotable:
		return "Stress has increased significantly. Take time for yourself.", true
	}
	return "", false
}

func sleepRecommendation(a models.Averages, _ models.Trends) (string, bool) {
	if a.SleepDuration == nil {
		return "Start tracking your sleep to get personalized recommendations.", true
	}
	switch {
	case *a.SleepDuration < targetSleepHours:
		return "Increase sleep to 7-8 hours. Try setting a consistent bedtime.", true
	case *a.SleepDuration > overSleepHours:
		return "Try reducing sleep time to 7-8 hours for optimal health.", true
	}
	return "", false
}

func stressRecommendation(a models.Averages, _ models.Trends) (string, bool) {
	if a.Stress == nil {
		return "", false
	}
	switch {
	case *a.Stress > highStressLevel:
		return "Try 15 minutes of meditation or deep breathing daily.", true
	case *a.Stress > mildStressLevel:
		return "Practice mindfulness: even 5 minutes helps reduce stress.", true
	}
	return "", false
}

func activityRecommendation(a models.Averages, _ models.Trends) (string, bool) {
	if a.Steps == nil {
		return "Start tracking your steps to improve accountability.", true
	}
	if *a.Steps < targetStepsLevel {
		return "Aim for 7,000-10,000 steps daily. Take short walks throughout the day.", true
	}
	return "Great activity level! Keep up with your exercise routine.", true
}

func moodRecommendation(a models.Averages, _ models.Trends) (string, bool) {
	if a.Mood != nil && *a.Mood < supportMoodLevel {
		return "Consider speaking with a mental health professional or trusted friend.", true
	}
	return "", false
}

func hydrationRecommendation(_ models.Averages, _ models.Trends) (string, bool) {
	return "Stay hydrated: drink at least 8 glasses of water daily.", true
}

func trainingBalanceRecommendation(_ models.Averages, _ models.Trends) (string, bool) {
	return "Balance cardio with strength training for optimal fitness.", true
}
