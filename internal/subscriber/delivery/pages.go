package delivery

// Confirmation pages for the unsubscribe link in digest emails.

const unsubscribeSuccessPage = `<!DOCTYPE html>
<html>
  <head>
    <title>Unsubscribed</title>
    <style>
      body {
        font-family: system-ui;
        padding: 40px;
        text-align: center;
        background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
        color: white;
        min-height: 100vh;
        margin: 0;
      }
      .container {
        max-width: 500px;
        margin: 80px auto 0;
        background: rgba(255,255,255,0.1);
        border-radius: 20px;
        padding: 40px;
      }
      h1 { font-size: 48px; margin: 0 0 16px 0; }
      p { font-size: 18px; line-height: 1.6; opacity: 0.9; }
      a { color: white; text-decoration: underline; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>✅ Unsubscribed</h1>
      <p>You've been successfully unsubscribed from TrendWatch AI.</p>
      <p style="font-size: 14px; margin-top: 32px;">Changed your mind? <a href="/">Subscribe again</a></p>
    </div>
  </body>
</html>
`

const unsubscribeNotFoundPage = `<!DOCTYPE html>
<html>
  <head>
    <title>Not Found</title>
    <style>
      body { font-family: system-ui; padding: 40px; text-align: center; }
      .container { max-width: 500px; margin: 0 auto; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>❓ Not Found</h1>
      <p>We couldn't find this email in our system.</p>
    </div>
  </body>
</html>
`

const unsubscribeInvalidPage = `<!DOCTYPE html>
<html>
  <head>
    <title>Invalid Link</title>
    <style>
      body { font-family: system-ui; padding: 40px; text-align: center; }
      .container { max-width: 500px; margin: 0 auto; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>❌ Invalid Link</h1>
      <p>This unsubscribe link is invalid or expired.</p>
    </div>
  </body>
</html>
`

const unsubscribeErrorPage = `<!DOCTYPE html>
<html>
  <head>
    <title>Error</title>
    <style>
      body { font-family: system-ui; padding: 40px; text-align: center; }
      .container { max-width: 500px; margin: 0 auto; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>❌ Error</h1>
      <p>Something went wrong. Please try again later.</p>
    </div>
  </body>
</html>
`
