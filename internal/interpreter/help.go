package interpreter

const Welcome = "Welcome to Turtle Graphics! Type 'help' for commands."

const helpText = `=== Turtle Graphics Commands ===

Movement:
  forward <n> or move <n> - Move forward n pixels
  backward <n> or reverse <n> - Move backward n pixels
  left <degrees> - Turn left by specified degrees (default 90)
  right <degrees> or rt <degrees> - Turn right by specified degrees (default 90)
  setspeed <1-10> - Set animation speed (1=slowest, 10=fastest)

Pen Control:
  penup or pu - Lift pen (stop drawing)
  pendown or pd - Lower pen (start drawing)
  penwidth <size> - Set pen thickness in pixels (1-100)
  pencolour <name> - Set pen colour: red, green, blue, black, yellow, cyan, magenta, white, gray
  pen <r> <g> <b> - Set custom RGB color (0-255 for each)

Shapes:
  circle <radius> - Draw circle with given radius
  square <size> - Draw square with given side length
  triangle <size> - Draw equilateral triangle
  triangle <side1> <side2> <side3> - Draw custom triangle
  olympics - Draw Olympic rings logo
  name or about - Draw the name art

Canvas Control:
  clear - Clear the canvas (with warning if unsaved)
  reset - Reset turtle to center position (with warning if unsaved)

File Operations:
  save <filename> - Save drawing as image (.png default, .bmp, .tiff, .svg)
  load <filename> - Load image file (.png, .bmp, .tiff)
  savescript <filename> - Save command history as text
  loadscript <filename> - Run commands from a text file
  history - Show the command history of this session
  exit or quit - Leave the program

Bounds and Limits:
  - Movement distance limited to 1000 pixels
  - Angles limited to -360 to 360 degrees
  - Shape sizes limited to 500 pixels
  - Turtle cannot move off screen

Examples:
  move 100 - Move forward 100 pixels
  right 45 - Turn right 45 degrees
  pen 255 0 0 - Set pen to red (RGB)
  square 50 - Draw square with 50px sides
  triangle 60 80 100 - Draw custom triangle`
