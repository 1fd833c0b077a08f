package vent

// Canned reply text. Fixed at process start, read-only at runtime. The
// crisis reply is reviewed copy and must never be replaced by generated
// text.

const crisisReply = "I'm really worried about you 💔 Please reach out to someone you trust or text HOME to 741741. You're not alone, and you matter. Can you promise me you'll reach out? 🫂"

const greetingCheckInReply = "Hey, good to see you back 💙 Last time things felt heavy. How are you holding up today?"

var greetingReplies = []string{
	"Hey! 😊 What's up? Anything on your mind today?",
	"Hey hey! 🌱 Good to see you. What's going on today?",
	"Hi! 😄 I'm all ears. What's on your mind?",
}

const (
	jobReply           = "Not getting a job feels so discouraging, but it doesn't define your worth. Keep showing up—your shot is coming. Want to talk about your next step? 🌱"
	jobMotivationReply = "Job hunting is rough, but it doesn't mean you're not awesome. 💪 Every setback is just a setup for a comeback. What's one thing you can try this week? 🚀"
	motivationReply    = "Motivation comes and goes, but small actions add up. Even a short walk or a few stretches can boost your mood. Want to try something simple today? 🏃‍♂️"
	racismReply        = "Facing racism is so unfair and painful. You deserve respect, always. Want to share what happened, or just how you're feeling? I'm here for you. 🫂"
	lonelinessReply    = "Feeling alone sucks, but you're not invisible to me. Even reaching out here is a big step. Want to talk about what makes you feel most alone? 💙"
	depressionReply    = "Depression makes everything feel heavy, but you're stronger than you think. Even small wins count. What's one thing that helped you before? 🌱"
	anxietyReply       = "Anxiety can be overwhelming, but you're safe right now. Try a deep breath with me? What's worrying you most today? 🌿"
	breakupReply       = "Breakups hurt, no sugarcoating it. But your heart will heal, even if it feels impossible now. Want to vent about it? 💔"
	familyReply        = "Family drama is exhausting, I get it. You're allowed to feel how you feel. Want to share what's been hardest lately? 🫂"
)

const (
	happyMoodReply   = "Love that energy! What's making you smile today? 🌟"
	sadMoodReply     = "Sorry you're feeling down. Want to talk about what's weighing on you? 💙"
	angryMoodReply   = "Anger is real—sometimes it's just too much. Want to let it out here? 🔥"
	anxiousMoodReply = "That on-edge feeling is exhausting. You're doing better than you think. What's weighing on you right now? 🌿"
)

var genericReplies = []string{
	"Thanks for sharing with me. Whatever it is, I'm here for you. Want to talk more about it? 🌱",
	"I hear you. You don't have to carry this alone. Want to tell me more? 💚",
	"Whatever you're going through, venting about it counts. I'm right here. What's next on your mind? 🌿",
}

// emergencyReply covers unexpected internal failures; the chat handler
// returns it with a 200 so the client UI never breaks mid-conversation.
const emergencyReply = "I'm having a tech hiccup, but I'm still here for you. Want to tell me more? 💚"
