package dialogue

import "github.com/PreranaYekkele/CalmBot/internal/domain"

// DefaultContent returns the built-in response bank.
func DefaultContent() Content {
	return Content{
		Greetings: []string{
			"Hi! I'm here to listen and support you. How are you feeling today?",
			"Welcome! This is a safe space to talk. How are you doing?",
			"Hello! Thank you for reaching out. Would you like to share what's on your mind?",
			"Hi there! I'm here to support you. How are you feeling right now?",
		},
		Responses: map[domain.Emotion][]string{
			domain.EmotionAnxiety: {
				"I notice you're feeling anxious. What brought these feelings up?",
				"Anxiety can feel overwhelming. Would you like to explore what's causing these feelings?",
				"When did you start feeling this anxiety? I'm here to listen without judgment.",
				"It sounds like anxiety is really present for you. What would help you feel more grounded?",
				"Sometimes anxiety can be intense. What specific worries are on your mind?",
				"Would you like to try some breathing exercises to help with the anxiety?",
				"I hear that anxiety is affecting you. How is it showing up in your daily life?",
				"Anxiety often comes with physical sensations. What are you experiencing?",
				"It's okay to feel anxious. Can we break down what's contributing to these feelings?",
				"Let's explore these anxious thoughts together. What's weighing most heavily?",
				"Anxiety can make us feel isolated. What support would be most helpful right now?",
				"Would you like to try grounding yourself in the present moment?",
				"Sometimes anxiety tells us stories about the future. What thoughts keep coming up?",
				"I'm hearing how challenging this is. What feels most overwhelming?",
				"Anxiety can affect our whole body. How is it manifesting for you?",
				"Let's take it one step at a time. What's your biggest concern right now?",
				"Would you like to explore some coping strategies for managing anxiety?",
				"Anxiety can make everything feel urgent. What needs our attention first?",
				"I'm here to support you through this. How can I help most effectively?",
				"Sometimes anxiety needs to be heard. What do you think it's trying to tell you?",
				"Your feelings are valid. Would you like to explore what triggers them?",
				"Anxiety can make us feel out of control. What helps you feel more centered?",
				"Let's understand your anxiety better. Have you noticed any patterns?",
				"Would you like to try a relaxation technique together?",
				"Anxiety often affects our breathing. Should we try some breathing exercises?",
				"It's brave to talk about anxiety. How long has this been going on?",
				"Sometimes anxiety protects us. What might it be protecting you from?",
				"Would you like to break down these feelings into smaller pieces?",
				"Anxiety can affect our relationships. How is it impacting yours?",
				"Let's explore what makes the anxiety better or worse.",
			},
			domain.EmotionDepression: {
				"I hear how difficult things are. Would you like to talk about what's happening?",
				"Depression can feel really heavy. How long have you been carrying this?",
				"It takes courage to share these feelings. What support would be most helpful?",
				"I hear the pain in your words. What would a moment of relief look like?",
				"Sometimes depression makes everything harder. What's been most challenging?",
				"You don't have to carry this alone. How can I support you?",
				"Depression can feel overwhelming. What would help right now?",
				"I notice a lot of sadness in your words. Would you like to explore that?",
				"It's okay to not be okay. How are you managing day to day?",
				"Depression can affect our whole world. What changes have you noticed?",
				"Would you like to talk about what might have triggered these feelings?",
				"Sometimes depression lies to us about our worth. What has it been telling you?",
				"Your feelings are valid. What would help you feel more supported?",
				"Depression can make us feel very alone. What helps you feel connected?",
				"Let's take things one step at a time. What feels manageable today?",
				"I hear how overwhelming this is. What used to bring you joy?",
				"Sometimes small steps help. What tiny thing could we focus on?",
				"Depression can cloud our view of the future. How can we focus on today?",
				"Would you like to explore some gentle ways to care for yourself?",
				"It's okay to need help. What kind of support are you looking for?",
				"Depression can affect our energy levels. How is it affecting yours?",
				"Sometimes depression comes in waves. Where are you in that wave right now?",
				"Your experience matters. What else would you like to share?",
				"Depression can make us forget our strengths. What strengths have helped you cope?",
				"Let's focus on what feels possible today. What's one small thing?",
				"Would you like to talk about what support systems you have?",
				"Depression can affect our sleep and appetite. Have you noticed changes?",
				"It's important to be gentle with yourself. What would that look like today?",
				"Sometimes depression needs to be witnessed. I'm here to listen.",
				"Let's explore what might bring even a moment of peace.",
			},
			domain.EmotionAnger: {
				"I can hear your anger. What triggered these feelings?",
				"It's okay to feel angry. Would you like to talk about what happened?",
				"Anger often tells us something important. What do you think it's saying?",
				"Your anger is valid. What would help you feel heard?",
				"Sometimes anger protects us. What might it be protecting you from?",
				"I hear how frustrated you are. What needs to change?",
				"Anger can be intense. How can I support you right now?",
				"Would you like to explore what's beneath the anger?",
				"It sounds like something really bothered you. Can you tell me more?",
				"Anger can be a signal. What do you think it's signaling?",
				"I'm hearing how upset you are. What would help in this moment?",
				"Sometimes anger builds up over time. How long have you been feeling this way?",
				"Your feelings are valid. What would make the situation better?",
				"Anger can be overwhelming. Would you like to try some calming techniques?",
				"I hear your frustration. What feels most unfair?",
				"Let's explore these feelings. What's at the core of your anger?",
				"Sometimes anger masks other emotions. What else might you be feeling?",
				"Would you like to talk about healthy ways to express your anger?",
				"Anger often comes with physical sensations. What are you noticing in your body?",
				"It's okay to feel angry about things that matter to you. What matters here?",
				"I'm here to listen without judgment. What else would you like to share?",
				"Sometimes anger points to our boundaries. Have any been crossed?",
				"Your anger deserves to be heard. What would you like to express?",
				"Let's explore what triggered these feelings. What happened first?",
				"Anger can be energizing. How would you like to channel this energy?",
				"Would you like to try some grounding exercises to help manage the intensity?",
				"I hear how important this is to you. What needs aren't being met?",
				"Sometimes anger helps us identify our values. What values feel challenged?",
				"Your reactions make sense. How can we address this situation?",
				"Let's work through this together. What would resolution look like?",
			},
			domain.EmotionGeneral: {
				"I'm here to listen. Would you like to tell me more?",
				"How are you feeling about that?",
				"Would you like to explore this further?",
				"What's on your mind?",
				"I'm here to support you. What would you like to talk about?",
			},
		},
		FollowUps: []string{
			"How long have you been feeling this way?",
			"What do you think triggered these feelings?",
			"Have you noticed any patterns in when this happens?",
			"What would help you feel better right now?",
			"How has this been affecting your daily life?",
			"Would you like to explore some coping strategies together?",
			"What support would be most helpful?",
			"Have you talked to anyone else about this?",
			"What changes have you noticed in yourself?",
			"How do these feelings affect your relationships?",
			"What helps you cope when things get difficult?",
			"Would you like to try some relaxation techniques?",
			"What would feeling better look like for you?",
			"How can I best support you right now?",
			"What usually helps in situations like this?",
		},
		Referrals: []ReferralOffer{
			{
				Message: "I've really valued our conversation. Would you like to connect with a mental health professional who can provide more specialized support?",
				Contact: "AASRA provides 24/7 support at 91-9820466726.",
			},
			{
				Message: "While I'm here to listen, a therapist could offer additional strategies and support. Would you like some recommendations?",
				Contact: "The Mind Wellness Clinic (1860-2662-345) offers professional counseling services.",
			},
			{
				Message: "You've shown courage in sharing these feelings. Would you like to explore professional support options?",
				Contact: "Vandrevala Foundation (1860-2662-345) provides 24/7 mental health support.",
			},
		},
		Crisis: "It sounds like you're carrying something really heavy right now, and I'm glad you told me. You deserve immediate, human support.\nAASRA provides 24/7 support at 91-9820466726. If you are in immediate danger, please contact your local emergency services.",
	}
}
