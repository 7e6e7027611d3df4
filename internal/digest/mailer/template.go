package mailer

// digestTemplate renders one personalized digest email. Inline styles
// only; email clients ignore stylesheets.
const digestTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Your Daily GitHub Digest</title>
</head>
<body style="margin: 0; padding: 0; background: linear-gradient(135deg, #1e1b4b 0%, #581c87 100%); font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
  <div style="max-width: 600px; margin: 0 auto; padding: 40px 20px;">

    <!-- Header -->
    <div style="text-align: center; margin-bottom: 40px;">
      <h1 style="color: white; font-size: 32px; margin: 0 0 8px 0;">
        🚀 TrendWatch AI
      </h1>
      <p style="color: rgba(255,255,255,0.8); margin: 0; font-size: 16px;">
        Your Daily GitHub Trending Digest
      </p>
      <p style="color: rgba(255,255,255,0.6); margin: 8px 0 0 0; font-size: 14px;">
        {{.Date}}
      </p>
    </div>

    <!-- Language Badge -->
    <div style="text-align: center; margin-bottom: 32px;">
      <span style="background: rgba(255,255,255,0.15); color: white; padding: 8px 16px; border-radius: 20px; font-size: 14px; font-weight: 600;">
        {{.LanguageBadge}}
      </span>
    </div>

    <!-- Repos -->
    {{range .Repos}}
    <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); border-radius: 12px; padding: 24px; margin-bottom: 20px; color: white;">
      <div style="margin-bottom: 12px;">
        <h2 style="margin: 0 0 8px 0; font-size: 20px; font-weight: bold;">
          <a href="{{.URL}}" style="color: white; text-decoration: none;">{{.FullName}}</a>
        </h2>
        <p style="margin: 0; opacity: 0.9; font-size: 14px;">{{.Description}}</p>
        <div style="font-size: 14px; margin: 8px 0 4px 0;">⭐ {{.StarsDisplay}}</div>
        <div style="font-size: 12px; color: #4ade80; font-weight: bold;">+{{.TodayStars}} today</div>
      </div>

      <div style="background: rgba(255,255,255,0.15); border-radius: 8px; padding: 16px; margin: 16px 0;">
        <div style="font-size: 12px; font-weight: bold; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 8px;">✨ AI SUMMARY</div>
        <p style="margin: 0; font-size: 14px; line-height: 1.6; opacity: 0.95;">{{.AISummary}}</p>
      </div>

      <div>
        <span style="background: rgba(255,255,255,0.2); padding: 4px 12px; border-radius: 20px; font-size: 12px; font-weight: 600;">{{.Language}}</span>
        <a href="{{.URL}}" style="color: white; text-decoration: none; font-size: 14px; opacity: 0.9; margin-left: 12px;">View on GitHub →</a>
      </div>
    </div>
    {{end}}

    <!-- Footer -->
    <div style="text-align: center; margin-top: 40px; padding-top: 32px; border-top: 1px solid rgba(255,255,255,0.1);">
      <p style="color: rgba(255,255,255,0.6); font-size: 14px; margin: 0 0 16px 0;">
        You're receiving this because you subscribed to TrendWatch AI
      </p>
      <p style="color: rgba(255,255,255,0.5); font-size: 12px; margin: 0;">
        <a href="{{.AppURL}}" style="color: rgba(255,255,255,0.7); text-decoration: underline;">Manage preferences</a> •
        <a href="{{.UnsubscribeURL}}" style="color: rgba(255,255,255,0.7); text-decoration: underline;">Unsubscribe</a>
      </p>
    </div>

  </div>
</body>
</html>
`
